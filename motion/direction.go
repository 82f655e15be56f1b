package motion

import "github.com/go-gl/mathgl/mgl64"

// degenerate is the squared length below which a vector has no direction.
const degenerate = 1e-12

// Intent is the movement requested for one frame.
type Intent struct {
	Forward, Backward bool
	Left, Right       bool
	Jump              bool
}

// Moving reports whether any directional input is held.
func (in Intent) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Basis returns the camera forward and left vectors projected onto the
// horizontal plane and normalized. A vector with no horizontal component
// comes back as zero.
func Basis(orientation mgl64.Quat) (forward, side mgl64.Vec3) {
	forward = Flatten(orientation.Rotate(mgl64.Vec3{0, 0, -1}))
	side = Flatten(orientation.Rotate(mgl64.Vec3{-1, 0, 0}))
	return forward, side
}

// Flatten drops the vertical component of v and normalizes the rest.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return normalizeOrZero(mgl64.Vec3{v.X(), 0, v.Z()})
}

// Direction sums the basis vectors gated by the held inputs and
// normalizes the result, so diagonals are no faster than straight lines.
func Direction(in Intent, forward, side mgl64.Vec3) mgl64.Vec3 {
	var d mgl64.Vec3
	if in.Forward {
		d = d.Add(forward)
	}
	if in.Backward {
		d = d.Sub(forward)
	}
	if in.Left {
		d = d.Add(side)
	}
	if in.Right {
		d = d.Sub(side)
	}
	return normalizeOrZero(d)
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	if v.LenSqr() < degenerate {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
