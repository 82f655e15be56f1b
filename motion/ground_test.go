package motion_test

import (
	"testing"

	"github.com/automoto/skeld/motion"
	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func TestGroundedRayWindow(t *testing.T) {
	p := motion.DefaultParams()
	tests := []struct {
		name    string
		surface func(t *testing.T, w *physics.World) float64
	}{
		{
			name: "floor plane",
			surface: func(t *testing.T, w *physics.World) float64 {
				addFloor(t, w)
				return 0
			},
		},
		{
			name: "table top",
			surface: func(t *testing.T, w *physics.World) float64 {
				table := physics.NewBox(0, mgl64.Vec3{0.5, 0.375, 0.5}, mgl64.Vec3{0, 0.375, 0})
				table.CollisionGroup = physics.GroupObjects
				require.NoError(t, w.AddBody(table))
				return 0.75
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			top := tt.surface(t, w)
			body := physics.NewBox(5, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{})
			at := func(y float64) bool {
				body.SetPosition(mgl64.Vec3{0, y, 0})
				return motion.Grounded(w, body, p)
			}

			assert.True(t, at(top+p.GroundProbeEnd), "surface exactly at the ray end")
			assert.False(t, at(top+p.GroundProbeEnd+1e-3), "surface past the ray end")
			assert.True(t, at(top+0.9), "standing on the surface")
			assert.False(t, at(top+p.GroundProbeStart-0.01), "ray starts below the surface")
		})
	}
}

// run advances the world and the player the way one game frame does.
func run(w *physics.World, loco *motion.Locomotor, player *physics.Body, in motion.Intent, frames int) {
	for i := 0; i < frames; i++ {
		w.Step(frame, frame, 5)
		grounded := motion.Grounded(w, player, loco.Params)
		loco.Update(player, in, mgl64.QuatIdent(), grounded, frame)
	}
}

func TestFallingPlayerComesToRestOnFloor(t *testing.T) {
	w := newWorld(t)
	addFloor(t, w)
	player := addPlayer(t, w, mgl64.Vec3{2, 3, -1})
	player.LinearDamping = 0.1
	loco := motion.NewLocomotor(w, motion.DefaultParams())

	run(w, loco, player, motion.Intent{}, 300)

	assert.InDelta(t, 0.9, player.Position().Y(), 1e-3, "box bottom rests on the floor")
	assert.InDelta(t, 0, player.Velocity.Y(), 1e-9)
	assert.True(t, motion.Grounded(w, player, loco.Params))
	assert.InDelta(t, 2, player.Position().X(), 1e-12)
}

func TestJumpTapLandsAgain(t *testing.T) {
	w := newWorld(t)
	addFloor(t, w)
	player := addPlayer(t, w, mgl64.Vec3{0, 0.9, 0})
	loco := motion.NewLocomotor(w, motion.DefaultParams())
	run(w, loco, player, motion.Intent{}, 10)

	run(w, loco, player, motion.Intent{Jump: true}, 1)
	assert.Greater(t, player.Position().Y(), 0.95, "takeoff lifts the player")

	run(w, loco, player, motion.Intent{}, 300)
	assert.InDelta(t, 0.9, player.Position().Y(), 1e-3)
}

func TestGravityPullsPlayerWhileAirborne(t *testing.T) {
	w := newWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{0, 10, 0})

	w.Step(frame, frame, 5)

	assert.Less(t, player.Velocity.Y(), 0.0)
	assert.Less(t, player.Position().Y(), 10.0)
}
