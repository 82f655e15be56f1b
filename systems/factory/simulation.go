package factory

import (
	"fmt"

	"github.com/automoto/skeld/archetypes"
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/automoto/skeld/station"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation builds the station layout into a fresh physics world
// and scene, and spawns an entity for every body it created.
func CreateSimulation(ecs *ecs.ECS, layout station.Layout) (*donburi.Entry, error) {
	sim := &components.SimulationData{
		World: physics.NewWorld(cfg.WorldConfig()),
		Scene: scene.New(),
		Sync:  scene.NewSyncTable(),
		Doors: doors.NewRegistry(cfg.Doors.Motion()),
		Clock: physics.NewFrameClock(cfg.Physics.MaxFrameDelta),
	}

	st, err := station.Build(layout, station.Target{
		World: sim.World,
		Scene: sim.Scene,
		Sync:  sim.Sync,
		Doors: sim.Doors,
	})
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}
	sim.Station = st

	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.Set(entry, sim)

	for _, b := range st.Walls {
		spawnBody(archetypes.Wall.Spawn(ecs), sim, b)
	}
	for _, b := range st.Tables {
		spawnBody(archetypes.Table.Spawn(ecs), sim, b)
	}
	for _, b := range st.Crates {
		spawnBody(archetypes.Crate.Spawn(ecs), sim, b)
	}
	for _, d := range st.Doors {
		door := archetypes.Door.Spawn(ecs)
		components.Door.SetValue(door, components.DoorData{Door: d})
		spawnBody(door, sim, d.Body)
	}
	return entry, nil
}

func spawnBody(e *donburi.Entry, sim *components.SimulationData, b *physics.Body) {
	node, _ := sim.Sync.Node(b.ID)
	components.Body.SetValue(e, components.BodyData{Body: b, Node: node})
}
