package systems

import (
	"image/color"
	"log"
	"time"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/input"
	"github.com/automoto/skeld/tags"
	"github.com/automoto/skeld/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallMapColor   = color.RGBA{150, 150, 150, 255}
	doorMapColor   = color.RGBA{200, 120, 60, 255}
	openMapColor   = color.RGBA{60, 200, 60, 255}
	objectMapColor = color.RGBA{0, 200, 255, 255}
	playerMapColor = color.RGBA{0, 100, 255, 255}
)

// UpdateDebug handles the overlay toggles and refreshes the debug panel.
func UpdateDebug(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	toggleOverlays(in.State, settings)
	if in.State.JustPressed(input.ActionToggleDebug) && settings.ShowOverlay {
		LogPlayerState(ecs)
	}

	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	info := collectDebugInfo(ecs, time.Now())
	info.FPS = ebiten.ActualFPS()
	components.Overlay.Get(overlayEntry).Panel.Update(info, settings.ShowOverlay)
}

func toggleOverlays(s *input.State, settings *components.SettingsData) {
	if s.JustPressed(input.ActionToggleDebug) {
		settings.ShowOverlay = !settings.ShowOverlay
		settings.Dirty = true
	}
	if s.JustPressed(input.ActionToggleColliders) {
		settings.ShowColliders = !settings.ShowColliders
		settings.Dirty = true
	}
}

func collectDebugInfo(ecs *ecs.ECS, now time.Time) ui.DebugInfo {
	var info ui.DebugInfo
	info.Held = heldNames(getOrCreateInput(ecs).State)
	info.Message = activeMessage(getOrCreateMessage(ecs), now)

	sim, ok := GetSimulation(ecs)
	if !ok {
		return info
	}
	info.Steps = sim.Steps
	info.AnimatingDoors = sim.Doors.Animating()

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return info
	}
	body := components.Body.Get(playerEntry).Body
	player := components.Player.Get(playerEntry)
	info.Position = body.Position()
	info.Velocity = body.Velocity
	info.Grounded = player.Grounded
	info.Room = player.Room
	if d, _, ok := sim.Doors.Nearest(info.Position); ok {
		info.NearestDoor = d.State().String()
	}
	return info
}

// CreateOverlay adds the debug panel singleton.
func CreateOverlay(ecs *ecs.ECS) error {
	panel, err := ui.NewDebugPanel(cfg.HUD.KeyHelp, cfg.HUD.TextColor, cfg.HUD.PanelColor)
	if err != nil {
		return err
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Overlay))
	components.Overlay.SetValue(entry, components.OverlayData{Panel: panel})
	return nil
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	components.Overlay.Get(overlayEntry).Panel.Draw(screen)
}

// DrawColliders renders a top-down map of every body around the player.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowColliders {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	scale := cfg.Debug.MapScale
	toScreen := func(p mgl64.Vec2) (float32, float32) {
		x := (p.X()-camera.MapCenter.X)*scale + float64(width)/2
		y := (p.Y()-camera.MapCenter.Y)*scale + float64(height)/2
		return float32(x), float32(y)
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Body.Get(e)
		if b.Node == nil || e.HasComponent(tags.Player) {
			return
		}
		c := wallMapColor
		switch {
		case e.HasComponent(components.Door):
			c = doorMapColor
			d := components.Door.Get(e)
			if d.IsOpen() {
				c = openMapColor
			}
			if d.Highlighted() {
				c = cfg.Yellow
			}
		case e.HasComponent(tags.Table), e.HasComponent(tags.Crate):
			c = objectMapColor
		}
		corners := b.Node.Footprint()
		for i := range corners {
			x0, y0 := toScreen(corners[i])
			x1, y1 := toScreen(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
		}
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Body.Get(playerEntry).Body.Position()
	px, py := toScreen(mgl64.Vec2{pos.X(), pos.Z()})
	vector.FillCircle(screen, px, py, float32(cfg.Player.BoundingRadius*scale), playerMapColor, false)

	forward := camera.View.Forward()
	hx, hy := toScreen(mgl64.Vec2{pos.X() + forward.X()*2, pos.Z() + forward.Z()*2})
	vector.StrokeLine(screen, px, py, hx, hy, 1, playerMapColor, false)
}

// LogPlayerState prints the player transform when the overlay is
// switched on.
func LogPlayerState(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry).Body
	p, v := body.Position(), body.Velocity
	log.Printf("Player state: Pos(%.2f, %.2f, %.2f) Vel(%.2f, %.2f, %.2f)", p.X(), p.Y(), p.Z(), v.X(), v.Y(), v.Z())
}
