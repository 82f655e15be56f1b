package motion

import "github.com/automoto/skeld/physics"

// Params tunes the locomotion and grounding probes.
type Params struct {
	MoveSpeed      float64 // Units per frame
	BoundingRadius float64 // Lateral reach of the wall probe
	SlideFactor    float64 // Fraction of MoveSpeed kept when sliding along a wall
	JumpLift       float64 // Instant lift applied on takeoff
	JumpSpeed      float64 // Upward velocity applied on takeoff
	Gravity        float64 // Downward acceleration while airborne

	GroundProbeStart float64 // Below the player center
	GroundProbeEnd   float64 // Below the player center, slightly past half height

	WallMask   physics.Group
	GroundMask physics.Group
}

// DefaultParams matches a 1.8 unit tall, 0.6 unit wide player.
func DefaultParams() Params {
	return Params{
		MoveSpeed:        0.3,
		BoundingRadius:   0.3,
		SlideFactor:      0.8,
		JumpLift:         0.1,
		JumpSpeed:        5,
		Gravity:          9.8,
		GroundProbeStart: 0.8,
		GroundProbeEnd:   1.1,
		WallMask:         physics.GroupStatic | physics.GroupDoor,
		GroundMask:       physics.GroupStatic | physics.GroupObjects,
	}
}
