package systems

import (
	"github.com/automoto/skeld/components"
	"github.com/automoto/skeld/motion"
	"github.com/automoto/skeld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrounding classifies the player as grounded or airborne and
// records the room it stands in.
func UpdateGrounding(ecs *ecs.ECS) {
	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry).Body

	player.Grounded = motion.Grounded(sim.World, body, player.Locomotor.Params)
	pos := body.Position()
	player.Room = sim.Station.RoomAt(pos.X(), pos.Z())
}

// UpdateLocomotion moves the player from the movement actions and the
// camera heading. Must run after UpdateGrounding and UpdateDoors.
func UpdateLocomotion(ecs *ecs.ECS) {
	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	in := getOrCreateInput(ecs)
	view := components.Camera.Get(cameraEntry).View
	movePlayer(playerEntry, intent(in.State), view.Orientation(), sim.Clock.Delta())
}

func movePlayer(playerEntry *donburi.Entry, in motion.Intent, heading mgl64.Quat, dt float64) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry).Body
	player.LastStep = player.Locomotor.Update(body, in, heading, player.Grounded, dt)
}
