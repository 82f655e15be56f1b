package motion

import (
	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Raycaster is the part of the physics world the probes need.
type Raycaster interface {
	RaycastClosest(from, to mgl64.Vec3, opts physics.RayOptions) physics.RaycastResult
}

// Grounded casts a short ray down from just below the body center. A
// missing world or body reads as airborne.
func Grounded(rc Raycaster, body *physics.Body, p Params) bool {
	if rc == nil || body == nil {
		return false
	}
	pos := body.Position()
	from := mgl64.Vec3{pos.X(), pos.Y() - p.GroundProbeStart, pos.Z()}
	to := mgl64.Vec3{pos.X(), pos.Y() - p.GroundProbeEnd, pos.Z()}
	return rc.RaycastClosest(from, to, physics.RayOptions{
		Mask:          p.GroundMask,
		SkipBackfaces: true,
	}).HasHit
}
