package factory

import (
	"fmt"

	"github.com/automoto/skeld/archetypes"
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/motion"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player body at spawn. The world integrates its
// gravity; locomotion moves it horizontally. Its debug node is linked for
// lookups but excluded from the body sync, since locomotion copies the
// player position to it.
func CreatePlayer(ecs *ecs.ECS, sim *components.SimulationData, spawn mgl64.Vec3) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	body := physics.NewBox(cfg.Player.Mass, cfg.Player.HalfExtents, spawn)
	body.FixedRotation = true
	body.LinearDamping = cfg.Player.LinearDamping
	body.CollisionGroup = physics.GroupPlayer
	body.CollisionMask = physics.GroupDefault | physics.GroupStatic | physics.GroupObjects | physics.GroupDoor
	body.Material = physics.MaterialPlayer
	if err := sim.World.AddBody(body); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	node := scene.NewMarker("player", cfg.Player.HalfExtents, spawn, cfg.LightBlue)
	if err := sim.Scene.Add(node); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	sim.Sync.Link(body, node)
	sim.Sync.Exclude(body.ID)

	components.Body.SetValue(player, components.BodyData{Body: body, Node: node})
	components.Player.SetValue(player, components.PlayerData{
		Locomotor: motion.NewLocomotor(sim.World, cfg.Player.Params(), node),
	})
	return player, nil
}
