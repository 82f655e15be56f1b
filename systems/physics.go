package systems

import (
	"time"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics ticks the frame clock, advances the world in fixed steps
// and copies body transforms onto their nodes.
func UpdatePhysics(ecs *ecs.ECS) {
	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	stepSimulation(sim, time.Now())
}

func stepSimulation(sim *components.SimulationData, now time.Time) {
	dt := sim.Clock.Tick(now)
	sim.Steps = sim.World.Step(cfg.Physics.FixedStep, dt, cfg.Physics.MaxSubSteps)
	sim.Sync.Sync(sim.World)
}

// GetSimulation returns the simulation singleton.
func GetSimulation(ecs *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}
