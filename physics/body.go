package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BodyID identifies a body inside a World. Zero is never assigned.
type BodyID uint32

// BodyType selects how the world integrates a body.
type BodyType int

const (
	// Static bodies never move on their own; callers may reposition them.
	Static BodyType = iota
	// Dynamic bodies are integrated under gravity and pushed out of static geometry.
	Dynamic
	// Kinematic bodies are positioned by the caller and only depenetrated.
	Kinematic
)

// Shape is the collision shape of a body.
type Shape interface {
	shape()
}

// Box is an oriented box given by its half extents.
type Box struct {
	HalfExtents mgl64.Vec3
}

// Plane is an infinite plane through the body position whose normal is
// the body's local +Y axis.
type Plane struct{}

func (Box) shape()   {}
func (Plane) shape() {}

// Body is a rigid body owned by a World.
type Body struct {
	ID   BodyID
	Type BodyType
	Mass float64

	Velocity      mgl64.Vec3
	LinearDamping float64
	FixedRotation bool

	Shape             Shape
	CollisionGroup    Group
	CollisionMask     Group
	CollisionResponse bool
	Material          string

	position   mgl64.Vec3
	quaternion mgl64.Quat

	world *World
	broad *resolv.Object
}

// NewBox returns a box body. A zero mass makes it static.
func NewBox(mass float64, halfExtents, position mgl64.Vec3) *Body {
	b := &Body{
		Mass:              mass,
		Shape:             Box{HalfExtents: halfExtents},
		CollisionGroup:    GroupDefault,
		CollisionMask:     GroupAll,
		CollisionResponse: true,
		Material:          MaterialDefault,
		position:          position,
		quaternion:        mgl64.QuatIdent(),
	}
	if mass > 0 {
		b.Type = Dynamic
		b.LinearDamping = 0.01
	}
	return b
}

// NewPlane returns a static plane through position with the given orientation.
func NewPlane(position mgl64.Vec3, orientation mgl64.Quat) *Body {
	return &Body{
		Shape:             Plane{},
		CollisionGroup:    GroupDefault,
		CollisionMask:     GroupAll,
		CollisionResponse: true,
		Material:          MaterialDefault,
		position:          position,
		quaternion:        orientation.Normalize(),
	}
}

func (b *Body) Position() mgl64.Vec3 {
	return b.position
}

func (b *Body) Quaternion() mgl64.Quat {
	return b.quaternion
}

// SetPosition moves the body and refreshes its broadphase entry.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.position = p
	b.refresh()
}

// Translate adds d to the body position.
func (b *Body) Translate(d mgl64.Vec3) {
	b.SetPosition(b.position.Add(d))
}

// SetQuaternion sets the orientation. Bodies with FixedRotation ignore it.
func (b *Body) SetQuaternion(q mgl64.Quat) {
	if b.FixedRotation {
		return
	}
	b.quaternion = q.Normalize()
	b.refresh()
}

// Accepts reports whether the filters of b and other allow a contact.
func (b *Body) Accepts(other *Body) bool {
	return b.CollisionMask.Has(other.CollisionGroup) && other.CollisionMask.Has(b.CollisionGroup)
}

func (b *Body) refresh() {
	if b.world != nil {
		b.world.broad.update(b)
	}
}

// Bounds returns the world-space axis aligned bounds of a box body.
// Planes report ok=false.
func (b *Body) Bounds() (min, max mgl64.Vec3, ok bool) {
	box, isBox := b.Shape.(Box)
	if !isBox {
		return min, max, false
	}
	ext := b.worldExtents(box)
	return b.position.Sub(ext), b.position.Add(ext), true
}

// worldExtents returns the half size of the AABB enclosing the rotated box.
func (b *Body) worldExtents(box Box) mgl64.Vec3 {
	var ext mgl64.Vec3
	axes := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, axis := range axes {
		r := b.quaternion.Rotate(axis).Mul(box.HalfExtents[i])
		ext[0] += math.Abs(r[0])
		ext[1] += math.Abs(r[1])
		ext[2] += math.Abs(r[2])
	}
	return ext
}

// PlaneNormal returns the world normal of a plane body.
func (b *Body) PlaneNormal() mgl64.Vec3 {
	return b.quaternion.Rotate(mgl64.Vec3{0, 1, 0})
}
