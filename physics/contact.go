package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// penetrationSlop is ignored so resting bodies do not jitter.
const penetrationSlop = 1e-4

// resolveContacts pushes a moving box out of every overlapping body it
// accepts. Two dynamic boxes share the correction by mass. Rotated boxes
// are treated by their bounds.
func (w *World) resolveContacts(b *Body) {
	box, ok := b.Shape.(Box)
	if !ok {
		return
	}
	min, max, _ := b.Bounds()
	w.broad.query(min.X(), min.Z(), max.X(), max.Z(), func(other *Body) {
		if other == b || !other.CollisionResponse || !b.Accepts(other) {
			return
		}
		if b.Type == Kinematic && other.Type != Static {
			return
		}
		if other.Type == Dynamic {
			// Each pair is visited from both sides; the lower ID handles it.
			if b.Type != Dynamic || other.ID < b.ID {
				return
			}
			if s, ok := other.Shape.(Box); ok {
				if normal, depth := boxBoxPenetration(b, other, s); depth > penetrationSlop {
					w.share(b, other, normal, depth)
				}
			}
			return
		}
		var normal mgl64.Vec3
		var depth float64
		switch s := other.Shape.(type) {
		case Plane:
			normal, depth = boxPlanePenetration(b, box, other)
		case Box:
			normal, depth = boxBoxPenetration(b, other, s)
		}
		if depth <= penetrationSlop {
			return
		}
		w.separate(b, other, normal, depth)
	})
}

func (w *World) separate(b, other *Body, normal mgl64.Vec3, depth float64) {
	b.position = b.position.Add(normal.Mul(depth))
	w.broad.update(b)

	vn := b.Velocity.Dot(normal)
	if vn >= 0 {
		return
	}
	if b.Type == Kinematic {
		b.Velocity = b.Velocity.Sub(normal.Mul(vn))
		return
	}
	cm := w.ContactMaterialFor(b.Material, other.Material)
	b.Velocity = b.Velocity.Sub(normal.Mul((1 + cm.Restitution) * vn))
	tangent := b.Velocity.Sub(normal.Mul(b.Velocity.Dot(normal)))
	b.Velocity = b.Velocity.Sub(tangent.Mul(mgl64.Clamp(cm.Friction, 0, 1)))
}

// share separates two dynamic bodies along normal, which points from
// other towards b, in inverse proportion to their masses, and stops
// them closing in on each other.
func (w *World) share(b, other *Body, normal mgl64.Vec3, depth float64) {
	total := b.Mass + other.Mass
	if total <= 0 {
		return
	}
	b.position = b.position.Add(normal.Mul(depth * other.Mass / total))
	other.position = other.position.Sub(normal.Mul(depth * b.Mass / total))
	w.broad.update(b)
	w.broad.update(other)

	closing := b.Velocity.Sub(other.Velocity).Dot(normal)
	if closing >= 0 {
		return
	}
	b.Velocity = b.Velocity.Sub(normal.Mul(closing * other.Mass / total))
	other.Velocity = other.Velocity.Add(normal.Mul(closing * b.Mass / total))
}

// boxPlanePenetration returns the plane normal and how far the box sinks
// below the plane.
func boxPlanePenetration(b *Body, box Box, plane *Body) (mgl64.Vec3, float64) {
	n := plane.PlaneNormal()
	reach := 0.0
	axes := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, axis := range axes {
		reach += math.Abs(n.Dot(b.quaternion.Rotate(axis))) * box.HalfExtents[i]
	}
	dist := n.Dot(b.position.Sub(plane.position))
	return n, reach - dist
}

// boxBoxPenetration returns the axis of least overlap between the bounds
// of b and other, pointing from other towards b.
func boxBoxPenetration(b, other *Body, box Box) (mgl64.Vec3, float64) {
	extB := b.worldExtents(b.Shape.(Box))
	extO := other.worldExtents(box)
	d := b.position.Sub(other.position)

	best := math.Inf(1)
	var normal mgl64.Vec3
	for i := 0; i < 3; i++ {
		overlap := extB[i] + extO[i] - math.Abs(d[i])
		if overlap <= 0 {
			return mgl64.Vec3{}, 0
		}
		if overlap < best {
			best = overlap
			normal = mgl64.Vec3{}
			if d[i] < 0 {
				normal[i] = -1
			} else {
				normal[i] = 1
			}
		}
	}
	return normal, best
}
