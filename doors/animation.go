package doors

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transform is a position and orientation pair.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Lerp blends t towards other by progress p in [0,1].
func (t Transform) Lerp(other Transform, p float64) Transform {
	return Transform{
		Position:    t.Position.Add(other.Position.Sub(t.Position).Mul(p)),
		Orientation: mgl64.QuatSlerp(t.Orientation, other.Orientation, p),
	}
}

// Animation is one opening or closing run of a door. The main loop
// samples it with the current time until it reports completion.
type Animation struct {
	Start    time.Time
	Duration time.Duration
	From, To Transform
	// Frame transforms are cosmetic and never reach the physics body.
	FrameFrom, FrameTo Transform

	tween *gween.Tween
}

func newAnimation(start time.Time, d time.Duration, from, to, frameFrom, frameTo Transform) *Animation {
	return &Animation{
		Start:     start,
		Duration:  d,
		From:      from,
		To:        to,
		FrameFrom: frameFrom,
		FrameTo:   frameTo,
		tween:     gween.New(0, 1, float32(d.Seconds()), ease.InOutSine),
	}
}

// Progress returns the eased progress at now and whether the run is over.
func (a *Animation) Progress(now time.Time) (float64, bool) {
	elapsed := now.Sub(a.Start)
	if a.Duration <= 0 || elapsed >= a.Duration {
		return 1, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p, _ := a.tween.Set(float32(elapsed.Seconds()))
	return mgl64.Clamp(float64(p), 0, 1), false
}

// Sample returns the mesh and frame transforms at now.
func (a *Animation) Sample(now time.Time) (mesh, frame Transform, done bool) {
	p, done := a.Progress(now)
	if done {
		return a.To, a.FrameTo, true
	}
	return a.From.Lerp(a.To, p), a.FrameFrom.Lerp(a.FrameTo, p), false
}
