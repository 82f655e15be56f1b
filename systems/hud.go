package systems

import (
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/fonts"
	"github.com/automoto/skeld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	promptPadding = 6
	promptOffsetY = 40
)

// DrawHUD renders the crosshair and the door prompt when a door is in
// reach.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(width)/2, float32(height)/2
	vector.FillCircle(screen, cx, cy, float32(cfg.HUD.CrosshairRadius), cfg.HUD.CrosshairColor, true)

	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Body.Get(playerEntry).Body.Position()
	if _, _, ok := sim.Doors.Nearest(pos); !ok {
		return
	}

	face := fonts.Regular.Get()
	bounds := text.BoundString(face, cfg.HUD.DoorPrompt)
	x := (width - bounds.Dx()) / 2
	y := height/2 + promptOffsetY
	vector.FillRect(screen,
		float32(x-promptPadding), float32(y+bounds.Min.Y-promptPadding),
		float32(bounds.Dx()+2*promptPadding), float32(bounds.Dy()+2*promptPadding),
		cfg.HUD.PanelColor, false)
	text.Draw(screen, cfg.HUD.DoorPrompt, face, x, y, cfg.HUD.TextColor)
}
