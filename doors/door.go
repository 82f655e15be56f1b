package doors

import (
	"time"

	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Visual is a transformable scene node.
type Visual interface {
	Position() mgl64.Vec3
	Orientation() mgl64.Quat
	SetPosition(p mgl64.Vec3)
	SetOrientation(q mgl64.Quat)
}

// Highlighter is implemented by visuals that can glow.
type Highlighter interface {
	SetHighlight(on bool)
}

// Door is a sliding door in a station wall.
type Door struct {
	Mesh        Visual
	Frame       Visual
	Body        *physics.Body
	Orientation Orientation

	state       State
	highlighted bool
	original    Transform
	frameOrig   Transform
	origMask    physics.Group
	origResp    bool
	anim        *Animation
	flashUntil  time.Time
}

// New captures the current transforms and collision filter of the door
// as its closed configuration.
func New(mesh, frame Visual, body *physics.Body, o Orientation) *Door {
	d := &Door{
		Mesh:        mesh,
		Frame:       frame,
		Body:        body,
		Orientation: o,
		state:       Closed,
	}
	if mesh != nil {
		d.original = Transform{Position: mesh.Position(), Orientation: mesh.Orientation()}
	} else if body != nil {
		d.original = Transform{Position: body.Position(), Orientation: body.Quaternion()}
	}
	if frame != nil {
		d.frameOrig = Transform{Position: frame.Position(), Orientation: frame.Orientation()}
	}
	if body != nil {
		d.origMask = body.CollisionMask
		d.origResp = body.CollisionResponse
	}
	return d
}

func (d *Door) State() State {
	return d.state
}

// IsOpen reports whether the door finished opening.
func (d *Door) IsOpen() bool {
	return d.state == Open
}

// Animating reports whether an open or close run is in flight.
func (d *Door) Animating() bool {
	return d.state.Animating()
}

func (d *Door) Highlighted() bool {
	return d.highlighted
}

// Flashing reports whether the interaction flash is still showing at now.
func (d *Door) Flashing(now time.Time) bool {
	return now.Before(d.flashUntil)
}

// OriginalPosition is the closed position of the door.
func (d *Door) OriginalPosition() mgl64.Vec3 {
	return d.original.Position
}

// Animation returns the run in flight, or nil.
func (d *Door) Animation() *Animation {
	return d.anim
}

// Position is the live position of the door, read from its body.
func (d *Door) Position() mgl64.Vec3 {
	if d.Body != nil {
		return d.Body.Position()
	}
	if d.Mesh != nil {
		return d.Mesh.Position()
	}
	return d.original.Position
}

func (d *Door) current() (Transform, Transform) {
	mesh := d.original
	if d.Mesh != nil {
		mesh = Transform{Position: d.Mesh.Position(), Orientation: d.Mesh.Orientation()}
	}
	frame := d.frameOrig
	if d.Frame != nil {
		frame = Transform{Position: d.Frame.Position(), Orientation: d.Frame.Orientation()}
	}
	return mesh, frame
}

// openDelta is the slide and turn applied to the closed transform.
func (d *Door) openDelta(m Motion) (mgl64.Vec3, mgl64.Quat) {
	up := mgl64.Vec3{0, 1, 0}
	if d.Orientation == Vertical {
		return mgl64.Vec3{m.Offset, 0, 0}, mgl64.QuatRotate(-m.Yaw, up)
	}
	return mgl64.Vec3{0, 0, m.Offset}, mgl64.QuatRotate(m.Yaw, up)
}

func (d *Door) opened(t Transform, slide mgl64.Vec3, turn mgl64.Quat) Transform {
	return Transform{
		Position:    t.Position.Add(slide),
		Orientation: turn.Mul(t.Orientation).Normalize(),
	}
}

// Toggle starts opening a closed door or closing an open one. It does
// nothing and returns false while a run is in flight.
func (d *Door) Toggle(now time.Time, m Motion) bool {
	if d.Animating() {
		return false
	}
	meshFrom, frameFrom := d.current()
	meshTo, frameTo := d.original, d.frameOrig
	if d.state == Closed {
		slide, turn := d.openDelta(m)
		meshTo = d.opened(d.original, slide, turn)
		frameTo = d.opened(d.frameOrig, slide, turn)
		d.state = Opening
	} else {
		d.state = Closing
	}
	d.anim = newAnimation(now, m.Duration, meshFrom, meshTo, frameFrom, frameTo)
	d.flashUntil = now.Add(m.Flash)
	return true
}

// Update samples the run in flight and finishes it once it is over.
func (d *Door) Update(now time.Time) {
	if d.anim == nil {
		return
	}
	mesh, frame, done := d.anim.Sample(now)
	d.apply(mesh, frame)
	if !done {
		return
	}
	d.anim = nil
	if d.state == Opening {
		d.state = Open
		if d.Body != nil {
			d.Body.CollisionResponse = false
			d.Body.CollisionMask = d.origMask.Without(physics.GroupPlayer)
		}
		return
	}
	d.state = Closed
	if d.Body != nil {
		d.Body.CollisionResponse = d.origResp
		d.Body.CollisionMask = d.origMask
	}
}

func (d *Door) apply(mesh, frame Transform) {
	if d.Mesh != nil {
		d.Mesh.SetPosition(mesh.Position)
		d.Mesh.SetOrientation(mesh.Orientation)
	}
	if d.Body != nil {
		d.Body.SetPosition(mesh.Position)
		d.Body.SetQuaternion(mesh.Orientation)
	}
	if d.Frame != nil {
		d.Frame.SetPosition(frame.Position)
		d.Frame.SetOrientation(frame.Orientation)
	}
}

func (d *Door) setHighlight(on bool) {
	d.highlighted = on
	if h, ok := d.Mesh.(Highlighter); ok {
		h.SetHighlight(on)
	}
}
