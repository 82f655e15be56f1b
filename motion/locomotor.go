package motion

import (
	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Follower mirrors the player position, e.g. the camera or a debug mesh.
type Follower interface {
	SetPosition(p mgl64.Vec3)
}

// Step is what one locomotion update did.
type Step struct {
	Direction    mgl64.Vec3
	Displacement mgl64.Vec3
	Blocked      bool
	Slid         bool
	Jumped       bool
}

// Locomotor displaces the player body horizontally against a world. The
// world still integrates the body's gravity.
type Locomotor struct {
	World     Raycaster
	Params    Params
	Followers []Follower
}

func NewLocomotor(world Raycaster, p Params, followers ...Follower) *Locomotor {
	return &Locomotor{World: world, Params: p, Followers: followers}
}

// Update runs one frame of movement for body. orientation is the camera
// orientation; dt is the clamped frame delta in seconds.
func (l *Locomotor) Update(body *physics.Body, in Intent, orientation mgl64.Quat, grounded bool, dt float64) Step {
	var step Step
	if body == nil {
		return step
	}

	if in.Moving() {
		forward, side := Basis(orientation)
		step.Direction = Direction(in, forward, side)
	}
	if step.Direction.LenSqr() > 0 {
		step.Displacement, step.Blocked, step.Slid = l.horizontal(body.Position(), step.Direction)
		body.Translate(step.Displacement)
	}

	step.Jumped = l.vertical(body, in.Jump, grounded, dt)

	for _, f := range l.Followers {
		f.SetPosition(body.Position())
	}
	return step
}

// horizontal returns the displacement for one frame along dir, sliding
// along the obstruction when the straight path is blocked.
func (l *Locomotor) horizontal(origin, dir mgl64.Vec3) (mgl64.Vec3, bool, bool) {
	p := l.Params
	probe := Probe(l.World, origin, dir, p.MoveSpeed, p)
	if !probe.Blocked {
		return dir.Mul(p.MoveSpeed), false, false
	}

	normal := obstructionNormal(l.World, origin, dir, p.MoveSpeed, p, probe)
	slide := SlideDirection(dir, normal)
	if slide.LenSqr() == 0 {
		return mgl64.Vec3{}, true, false
	}
	speed := p.MoveSpeed * p.SlideFactor
	if Probe(l.World, origin, slide, speed, p).Blocked {
		return mgl64.Vec3{}, true, false
	}
	return slide.Mul(speed), true, true
}

// vertical applies jump, manual gravity or a ground stop.
func (l *Locomotor) vertical(body *physics.Body, jump, grounded bool, dt float64) bool {
	p := l.Params
	v := body.Velocity
	switch {
	case jump && grounded:
		body.Translate(mgl64.Vec3{0, p.JumpLift, 0})
		body.Velocity = mgl64.Vec3{v.X(), p.JumpSpeed, v.Z()}
		return true
	case !grounded:
		vy := v.Y() - p.Gravity*dt
		body.Velocity = mgl64.Vec3{v.X(), vy, v.Z()}
		body.Translate(mgl64.Vec3{0, vy * dt, 0})
	default:
		body.Velocity = mgl64.Vec3{v.X(), 0, v.Z()}
	}
	return false
}
