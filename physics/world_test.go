package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedStep = 1.0 / 60.0

func newTestWorld() *World {
	return NewWorld(Config{
		Gravity: mgl64.Vec3{0, -9.82, 0},
		Bounds: Bounds{
			Min:      mgl64.Vec2{-64, -64},
			Max:      mgl64.Vec2{64, 64},
			CellSize: 4,
		},
		DefaultContact: ContactMaterial{Friction: 0.3},
	})
}

func addFloor(t *testing.T, w *World) *Body {
	t.Helper()
	floor := NewPlane(mgl64.Vec3{}, mgl64.QuatIdent())
	floor.CollisionGroup = GroupStatic
	floor.Material = MaterialFloor
	require.NoError(t, w.AddBody(floor))
	return floor
}

func TestStepCapsSubSteps(t *testing.T) {
	w := newTestWorld()

	steps := w.Step(fixedStep, 0.25, 5)

	assert.Equal(t, 5, steps)
	assert.LessOrEqual(t, w.Time(), 5*fixedStep+1e-12)
}

func TestStepDropsBacklog(t *testing.T) {
	w := newTestWorld()

	w.Step(fixedStep, 0.25, 5)
	steps := w.Step(fixedStep, fixedStep/2, 5)

	assert.LessOrEqual(t, steps, 1)
	assert.LessOrEqual(t, w.Time(), 6*fixedStep+1e-12)
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w := newTestWorld()

	assert.Equal(t, 0, w.Step(fixedStep, 0, 5))
	assert.Equal(t, 0, w.Step(fixedStep, -0.5, 5))
	assert.Zero(t, w.Time())
}

func TestStepAccumulatesShortFrames(t *testing.T) {
	w := newTestWorld()

	assert.Equal(t, 0, w.Step(fixedStep, fixedStep*0.6, 5))
	assert.Equal(t, 1, w.Step(fixedStep, fixedStep*0.6, 5))
}

func TestDynamicBodyFallsAndRestsOnFloor(t *testing.T) {
	w := newTestWorld()
	addFloor(t, w)
	crate := NewBox(2, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0, 3, 0})
	crate.CollisionGroup = GroupObjects
	require.NoError(t, w.AddBody(crate))

	for i := 0; i < 240; i++ {
		w.Step(fixedStep, fixedStep, 5)
	}

	assert.InDelta(t, 0.5, crate.Position().Y(), 0.05)
	assert.InDelta(t, 0, crate.Velocity.Y(), 0.5)
}

func TestKinematicBodyIsNotIntegrated(t *testing.T) {
	w := newTestWorld()
	player := NewBox(5, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{0, 5, 0})
	player.Type = Kinematic
	require.NoError(t, w.AddBody(player))

	w.Step(fixedStep, 0.1, 5)

	assert.Equal(t, mgl64.Vec3{0, 5, 0}, player.Position())
}

func TestKinematicBodyIsPushedOutOfWalls(t *testing.T) {
	w := newTestWorld()
	wall := NewBox(0, mgl64.Vec3{0.1, 1.5, 5}, mgl64.Vec3{1, 1.5, 0})
	wall.CollisionGroup = GroupStatic
	require.NoError(t, w.AddBody(wall))
	player := NewBox(5, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{0.75, 1, 0})
	player.Type = Kinematic
	player.CollisionGroup = GroupPlayer
	player.CollisionMask = GroupStatic
	require.NoError(t, w.AddBody(player))

	w.Step(fixedStep, fixedStep, 5)

	assert.InDelta(t, 0.6, player.Position().X(), 1e-9)
}

func TestDynamicBoxesShareSeparationByMass(t *testing.T) {
	w := NewWorld(Config{
		Bounds: Bounds{Min: mgl64.Vec2{-64, -64}, Max: mgl64.Vec2{64, 64}, CellSize: 4},
	})
	player := NewBox(6, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{0, 1, 0})
	player.CollisionGroup = GroupPlayer
	player.CollisionMask = GroupObjects
	player.Velocity = mgl64.Vec3{1, 0, 0}
	player.LinearDamping = 0
	require.NoError(t, w.AddBody(player))
	crate := NewBox(2, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.7, 1, 0})
	crate.CollisionGroup = GroupObjects
	crate.CollisionMask = GroupPlayer
	require.NoError(t, w.AddBody(crate))

	start := player.Position().X()
	w.Step(fixedStep, fixedStep, 5)

	gap := crate.Position().X() - player.Position().X()
	assert.InDelta(t, 0.8, gap, 1e-9, "boxes end up touching")
	pushed := crate.Position().X() - 0.7
	moved := player.Position().X() - (start + fixedStep)
	assert.Greater(t, pushed, 0.0)
	assert.InDelta(t, -3*moved, pushed, 1e-9, "the lighter crate takes three quarters")
	assert.InDelta(t, crate.Velocity.X(), player.Velocity.X(), 1e-9, "no closing speed left")
	assert.InDelta(t, 0.75, player.Velocity.X(), 1e-9)
}

func TestContactRespectsFilters(t *testing.T) {
	w := newTestWorld()
	door := NewBox(0, mgl64.Vec3{1.5, 1.5, 0.1}, mgl64.Vec3{0, 1.5, 0})
	door.CollisionGroup = GroupDoor
	door.CollisionMask = GroupDefault
	require.NoError(t, w.AddBody(door))
	player := NewBox(5, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{0, 1, 0})
	player.Type = Kinematic
	player.CollisionGroup = GroupPlayer
	player.CollisionMask = GroupDoor
	require.NoError(t, w.AddBody(player))

	w.Step(fixedStep, fixedStep, 5)

	assert.Equal(t, mgl64.Vec3{0, 1, 0}, player.Position())
}

func TestAddRemoveBody(t *testing.T) {
	w := newTestWorld()
	b := NewBox(0, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{})

	require.NoError(t, w.AddBody(b))
	assert.NotZero(t, b.ID)
	assert.ErrorIs(t, w.AddBody(b), ErrDuplicateBody)
	assert.ErrorIs(t, w.AddBody(nil), ErrNilBody)

	got, ok := w.Body(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)

	require.NoError(t, w.RemoveBody(b))
	_, ok = w.Body(b.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, w.RemoveBody(b), ErrUnknownBody)
	assert.Empty(t, w.Bodies())
}

func TestContactMaterialLookupIsSymmetric(t *testing.T) {
	w := newTestWorld()
	w.AddContactMaterial(ContactMaterial{A: MaterialPlayer, B: MaterialWall, Restitution: 0.1})

	assert.Equal(t, 0.1, w.ContactMaterialFor(MaterialWall, MaterialPlayer).Restitution)
	assert.Equal(t, 0.3, w.ContactMaterialFor(MaterialFloor, MaterialObject).Friction)
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "player|door", (GroupPlayer | GroupDoor).String())
	assert.Equal(t, "none", Group(0).String())
}
