package components

import (
	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/automoto/skeld/station"
	"github.com/yohamta/donburi"
)

// SimulationData is the singleton holding the physics world, the scene
// and everything built into them.
type SimulationData struct {
	World   *physics.World
	Scene   *scene.Scene
	Sync    *scene.SyncTable
	Doors   *doors.Registry
	Station *station.Station
	Clock   *physics.FrameClock

	Steps int // Physics steps taken this frame
}

var Simulation = donburi.NewComponentType[SimulationData]()
