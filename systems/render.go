package systems

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var floorColor = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}

// viewMask is what the first person view sees.
const viewMask = physics.GroupStatic | physics.GroupDoor

// DrawWorld renders the first person view as one raycast per screen
// column against walls and doors.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	sim, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	view := components.Camera.Get(cameraEntry).View
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	proj := (width / 2) / math.Tan(view.FOV/2)
	horizon := height/2 + math.Tan(view.Pitch)*proj
	vector.FillRect(screen, 0, float32(horizon), float32(width), float32(height-horizon), floorColor, false)

	doorsByBody := doorLookup(ecs)
	now := time.Now()
	wallHeight := sim.Station.Layout.WallHeight
	cols := cfg.Camera.Columns
	colWidth := width / float64(cols)

	for i := 0; i < cols; i++ {
		dir, offset := columnRay(view, i, cols)
		res := sim.World.RaycastClosest(view.Position, view.Position.Add(dir.Mul(cfg.Camera.ViewDistance)), physics.RayOptions{
			Mask:          viewMask,
			Group:         physics.GroupPlayer,
			SkipBackfaces: true,
		})
		if !res.HasHit {
			continue
		}
		dist := res.Distance * math.Cos(offset)
		top, bottom := columnSpan(dist, view.Position.Y(), wallHeight, horizon, proj)

		c := bodyColor(sim.Sync, res.Body, doorsByBody[res.Body.ID], now)
		c = shade(c, dist, cfg.Camera.ViewDistance, math.Abs(res.HitNormal.X()) > math.Abs(res.HitNormal.Z()))
		vector.FillRect(screen, float32(float64(i)*colWidth), float32(top), float32(colWidth+1), float32(bottom-top), c, false)
	}
}

// columnRay returns the horizontal view direction through column i and
// its angle from the view center.
func columnRay(view *scene.Camera, i, cols int) (mgl64.Vec3, float64) {
	screenX := 2*(float64(i)+0.5)/float64(cols) - 1
	offset := math.Atan(screenX * math.Tan(view.FOV/2))
	yaw := mgl64.QuatRotate(view.Yaw-offset, mgl64.Vec3{0, 1, 0})
	return yaw.Rotate(mgl64.Vec3{0, 0, -1}), offset
}

// columnSpan projects a wall from the floor to wallHeight at distance
// dist onto screen rows.
func columnSpan(dist, eyeY, wallHeight, horizon, proj float64) (float64, float64) {
	dist = math.Max(dist, 0.05)
	top := horizon - (wallHeight-eyeY)/dist*proj
	bottom := horizon + eyeY/dist*proj
	return top, bottom
}

// shade darkens c with distance. Walls facing along X are a bit darker
// so corners read.
func shade(c color.RGBA, dist, maxDist float64, xFacing bool) color.RGBA {
	f := 1 - 0.75*mgl64.Clamp(dist/maxDist, 0, 1)
	if xFacing {
		f *= 0.8
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// bodyColor is the node color of b, tinted for a highlighted or
// flashing door.
func bodyColor(sync *scene.SyncTable, b *physics.Body, d *doors.Door, now time.Time) color.RGBA {
	c := cfg.White
	if n, ok := sync.Node(b.ID); ok {
		c = n.Color
		if n.Highlighted() {
			c = addColor(c, cfg.Doors.HighlightColor)
		}
	}
	if d != nil && d.Flashing(now) {
		c = cfg.Doors.FlashColor
	}
	return c
}

func addColor(a, b color.RGBA) color.RGBA {
	sum := func(x, y uint8) uint8 {
		return uint8(min(int(x)+int(y), 255))
	}
	return color.RGBA{R: sum(a.R, b.R), G: sum(a.G, b.G), B: sum(a.B, b.B), A: a.A}
}

func doorLookup(ecs *ecs.ECS) map[physics.BodyID]*doors.Door {
	out := make(map[physics.BodyID]*doors.Door)
	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		out[d.Body.ID] = d.Door
	})
	return out
}
