package motion

import (
	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// probeOffsets are the lateral ray origins as fractions of the bounding
// radius. The first entry is the center ray.
var probeOffsets = [5]float64{0, -1, -0.5, 0.5, 1}

// ProbeResult is the outcome of a five ray sweep.
type ProbeResult struct {
	Blocked bool
	// Hit is the closest hit among the rays, valid when Blocked.
	Hit physics.RaycastResult
}

// Probe sweeps five parallel rays from origin along dir. Each ray is
// distance plus radius long so the leading edge of the body is covered.
// dir must be horizontal and normalized.
func Probe(rc Raycaster, origin, dir mgl64.Vec3, distance float64, p Params) ProbeResult {
	var res ProbeResult
	if dir.LenSqr() < degenerate || distance <= 0 {
		return res
	}
	lateral := mgl64.Vec3{-dir.Z(), 0, dir.X()}
	reach := dir.Mul(distance + p.BoundingRadius)
	opts := physics.RayOptions{
		Mask:          p.WallMask,
		Group:         physics.GroupPlayer,
		SkipBackfaces: true,
	}
	for _, f := range probeOffsets {
		from := origin.Add(lateral.Mul(f * p.BoundingRadius))
		hit := rc.RaycastClosest(from, from.Add(reach), opts)
		if !hit.HasHit {
			continue
		}
		if !res.Blocked || hit.Distance < res.Hit.Distance {
			res.Hit = hit
		}
		res.Blocked = true
	}
	return res
}

// SlideDirection projects dir onto the wall plane given by normal after
// flattening both onto the horizontal plane. A wall square to the motion
// leaves nothing to slide along and yields zero.
func SlideDirection(dir, normal mgl64.Vec3) mgl64.Vec3 {
	n := Flatten(normal)
	if n.LenSqr() < degenerate {
		return mgl64.Vec3{}
	}
	return normalizeOrZero(dir.Sub(n.Mul(dir.Dot(n))))
}

// obstructionNormal casts along dir from the center to find the surface
// that blocked the probe, falling back to the probe's closest hit.
func obstructionNormal(rc Raycaster, origin, dir mgl64.Vec3, distance float64, p Params, probe ProbeResult) mgl64.Vec3 {
	hit := rc.RaycastClosest(origin, origin.Add(dir.Mul(distance+p.BoundingRadius)), physics.RayOptions{
		Mask:          p.WallMask,
		Group:         physics.GroupPlayer,
		SkipBackfaces: true,
	})
	if hit.HasHit {
		return hit.HitNormal
	}
	return probe.Hit.HitNormal
}
