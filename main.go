package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skeld/config"
	"github.com/automoto/skeld/fonts"
	"github.com/automoto/skeld/scenes"
	"github.com/automoto/skeld/station"
	"github.com/automoto/skeld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(station.Skeld()),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding physics, player, door, camera and debug settings")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
