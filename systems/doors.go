package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/skeld/components"
	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/input"
	"github.com/automoto/skeld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors highlights the door in reach, toggles it on the interact
// action and samples every door animation.
func UpdateDoors(ecs *ecs.ECS) {
	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	in := getOrCreateInput(ecs)
	pos := components.Body.Get(playerEntry).Body.Position()
	msg := getOrCreateMessage(ecs)
	updateDoors(sim.Doors, msg, pos, in.State.JustPressed(input.ActionInteract), time.Now())
}

// updateDoors returns the door toggled this frame, or nil.
func updateDoors(reg *doors.Registry, msg *components.MessageStateData, pos mgl64.Vec3, interact bool, now time.Time) *doors.Door {
	reg.Highlight(pos)

	var toggled *doors.Door
	if interact {
		toggled = interactDoor(reg, msg, pos, now)
	}

	var running []*doors.Door
	for _, d := range reg.Doors() {
		if d.Animating() {
			running = append(running, d)
		}
	}
	reg.Update(now)
	for _, d := range running {
		if !d.Animating() {
			log.Printf("Door %s fully", d.State())
		}
	}
	return toggled
}

func interactDoor(reg *doors.Registry, msg *components.MessageStateData, pos mgl64.Vec3, now time.Time) *doors.Door {
	nearest, _, ok := reg.Nearest(pos)
	if !ok {
		log.Printf("No doors within interaction range")
		showMessage(msg, "No door in range", now)
		return nil
	}
	was := nearest.State()
	if reg.Interact(pos, now) == nil {
		showMessage(msg, fmt.Sprintf("Door is %s", was), now)
		return nil
	}
	p := nearest.Position()
	log.Printf("Interacting with door at (%.2f, %.2f, %.2f), was %s", p.X(), p.Y(), p.Z(), was)
	showMessage(msg, fmt.Sprintf("Door %s", nearest.State()), now)
	return nearest
}
