package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a first person camera driven by yaw and pitch.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64 // Radians about +Y, zero looks down -Z
	Pitch    float64 // Radians about the camera X axis
	FOV      float64 // Horizontal field of view in radians

	PitchLimit float64
}

func NewCamera(fov, pitchLimit float64) *Camera {
	return &Camera{FOV: fov, PitchLimit: pitchLimit}
}

func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
}

// Look turns the camera by dx, dy radians, clamping pitch.
func (c *Camera) Look(dx, dy float64) {
	c.Yaw = math.Mod(c.Yaw+dx, 2*math.Pi)
	c.Pitch = mgl64.Clamp(c.Pitch+dy, -c.PitchLimit, c.PitchLimit)
}

// Orientation returns yaw then pitch as a quaternion.
func (c *Camera) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(c.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Forward is the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
}
