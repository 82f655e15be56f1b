package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rayEpsilon widens the segment end so a surface exactly at the end
// point still counts as a hit.
const rayEpsilon = 1e-9

// RayOptions filters the bodies a ray may hit.
type RayOptions struct {
	// Mask selects the body groups the ray tests against.
	Mask Group
	// Group is the ray's own group, checked against body masks. Zero means all.
	Group Group
	// SkipBackfaces ignores surfaces whose normal faces along the ray,
	// including boxes the ray starts inside.
	SkipBackfaces bool
}

// RaycastResult is the closest hit along a ray.
type RaycastResult struct {
	HasHit    bool
	HitPoint  mgl64.Vec3
	HitNormal mgl64.Vec3
	// Distance from the ray start to the hit point.
	Distance float64
	Body     *Body
}

// RaycastClosest returns the nearest hit on the segment from..to. Bodies
// with collision response disabled are never hit.
func (w *World) RaycastClosest(from, to mgl64.Vec3, opts RayOptions) RaycastResult {
	var res RaycastResult
	dir := to.Sub(from)
	if dir.LenSqr() == 0 {
		return res
	}
	group := opts.Group
	if group == 0 {
		group = GroupAll
	}

	bestT := math.Inf(1)
	minX, maxX := math.Min(from.X(), to.X()), math.Max(from.X(), to.X())
	minZ, maxZ := math.Min(from.Z(), to.Z()), math.Max(from.Z(), to.Z())
	w.broad.query(minX, minZ, maxX, maxZ, func(b *Body) {
		if !b.CollisionResponse || !opts.Mask.Has(b.CollisionGroup) || !b.CollisionMask.Has(group) {
			return
		}
		var t float64
		var n mgl64.Vec3
		var hit bool
		switch s := b.Shape.(type) {
		case Box:
			t, n, hit = rayBox(from, dir, b, s, opts.SkipBackfaces)
		case Plane:
			t, n, hit = rayPlane(from, dir, b, opts.SkipBackfaces)
		}
		if !hit || t >= bestT {
			return
		}
		bestT = t
		res = RaycastResult{
			HasHit:    true,
			HitPoint:  from.Add(dir.Mul(t)),
			HitNormal: n,
			Distance:  dir.Len() * t,
			Body:      b,
		}
	})
	return res
}

// rayBox intersects the segment from+t*dir, t in [0,1], with an oriented
// box using the slab method in the box's local frame.
func rayBox(from, dir mgl64.Vec3, b *Body, box Box, skipBackfaces bool) (float64, mgl64.Vec3, bool) {
	inv := b.quaternion.Inverse()
	o := inv.Rotate(from.Sub(b.position))
	d := inv.Rotate(dir)
	h := box.HalfExtents

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var nEnter, nExit mgl64.Vec3
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < -h[i] || o[i] > h[i] {
				return 0, nEnter, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / d[i]
		t2 := (h[i] - o[i]) / d[i]
		n1, n2 := mgl64.Vec3{}, mgl64.Vec3{}
		n1[i], n2[i] = -1, 1
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tEnter {
			tEnter, nEnter = t1, n1
		}
		if t2 < tExit {
			tExit, nExit = t2, n2
		}
		if tEnter > tExit {
			return 0, nEnter, false
		}
	}

	if tEnter >= 0 {
		if tEnter > 1+rayEpsilon {
			return 0, nEnter, false
		}
		return tEnter, b.quaternion.Rotate(nEnter), true
	}
	// The segment starts inside the box; the only surface it crosses is a back face.
	if skipBackfaces || tExit < 0 || tExit > 1+rayEpsilon {
		return 0, nExit, false
	}
	return tExit, b.quaternion.Rotate(nExit), true
}

func rayPlane(from, dir mgl64.Vec3, b *Body, skipBackfaces bool) (float64, mgl64.Vec3, bool) {
	n := b.PlaneNormal()
	denom := n.Dot(dir)
	if math.Abs(denom) < 1e-12 {
		return 0, n, false
	}
	if denom > 0 && skipBackfaces {
		return 0, n, false
	}
	t := n.Dot(b.position.Sub(from)) / denom
	if t < 0 || t > 1+rayEpsilon {
		return 0, n, false
	}
	return math.Min(t, 1), n, true
}
