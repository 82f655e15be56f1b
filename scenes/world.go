package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/components"
	"github.com/automoto/skeld/station"
	"github.com/automoto/skeld/systems"
	"github.com/automoto/skeld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene walks the player through the station.
type WorldScene struct {
	ecs    *ecs.ECS
	layout station.Layout
	once   sync.Once
}

// NewWorldScene creates a scene for layout. The world is built on the
// first Update.
func NewWorldScene(layout station.Layout) *WorldScene {
	return &WorldScene{layout: layout}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, everything below reads actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLook)

	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateGrounding)
	ecs.AddSystem(systems.UpdateDoors)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateSettings)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawColliders)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = ecs

	simEntry, err := factory.CreateSimulation(ws.ecs, ws.layout)
	if err != nil {
		log.Fatalf("Failed to build station: %v", err)
	}
	sim := components.Simulation.Get(simEntry)

	if _, err := factory.CreatePlayer(ws.ecs, sim, ws.layout.Spawn); err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}
	factory.CreateCamera(ws.ecs, ws.layout.Spawn)

	if err := systems.CreateOverlay(ws.ecs); err != nil {
		log.Fatalf("Failed to create debug overlay: %v", err)
	}
	systems.ShowMessage(ws.ecs, "Click to look around")
}
