package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grey = color.RGBA{128, 128, 128, 255}

func TestAddRemoveNode(t *testing.T) {
	s := New()
	n := NewBox("wall", mgl64.Vec3{1, 1, 1}, mgl64.Vec3{}, grey)

	require.NoError(t, s.Add(n))
	assert.NotZero(t, n.ID)
	assert.ErrorIs(t, s.Add(n), ErrDuplicateNode)
	assert.ErrorIs(t, s.Add(nil), ErrNilNode)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(n))
	assert.ErrorIs(t, s.Remove(n), ErrUnknownNode)
	assert.Zero(t, s.Len())
}

func newSyncWorld(t *testing.T) *physics.World {
	t.Helper()
	return physics.NewWorld(physics.Config{
		Gravity: mgl64.Vec3{0, -9.82, 0},
		Bounds:  physics.Bounds{Min: mgl64.Vec2{-16, -16}, Max: mgl64.Vec2{16, 16}, CellSize: 4},
	})
}

func TestSyncSkipsExcludedBodies(t *testing.T) {
	w := newSyncWorld(t)
	crate := physics.NewBox(1, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0, 5, 0})
	player := physics.NewBox(5, mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{2, 1, 0})
	player.Type = physics.Kinematic
	require.NoError(t, w.AddBody(crate))
	require.NoError(t, w.AddBody(player))

	crateNode := NewBox("crate", mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{}, grey)
	playerNode := NewMarker("player", mgl64.Vec3{0.3, 0.9, 0.3}, mgl64.Vec3{9, 9, 9}, grey)
	table := NewSyncTable()
	table.Link(crate, crateNode)
	table.Link(player, playerNode)
	table.Exclude(player.ID)

	w.Step(1.0/60, 0.1, 5)
	updated := table.Sync(w)

	assert.Equal(t, 1, updated)
	assert.Equal(t, crate.Position(), crateNode.Position())
	assert.Equal(t, mgl64.Vec3{9, 9, 9}, playerNode.Position())
}

func TestSyncSkipsRemovedBodies(t *testing.T) {
	w := newSyncWorld(t)
	crate := physics.NewBox(1, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0, 5, 0})
	require.NoError(t, w.AddBody(crate))
	table := NewSyncTable()
	table.Link(crate, NewBox("crate", mgl64.Vec3{}, mgl64.Vec3{}, grey))

	require.NoError(t, w.RemoveBody(crate))

	assert.Zero(t, table.Sync(w))
	table.Unlink(crate.ID)
	assert.Zero(t, table.Len())
}

func TestCameraLook(t *testing.T) {
	c := NewCamera(math.Pi/2, 1.5)

	assert.True(t, c.Forward().ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-12))

	c.Look(math.Pi/2, 0)
	assert.True(t, c.Forward().ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-12))

	c.Look(0, 10)
	assert.Equal(t, 1.5, c.Pitch)
	c.Look(0, -20)
	assert.Equal(t, -1.5, c.Pitch)
}

func TestNodeFootprintAndYaw(t *testing.T) {
	n := NewBox("door", mgl64.Vec3{1.5, 1.5, 0.1}, mgl64.Vec3{10, 1.5, 0}, grey)
	n.SetOrientation(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}))

	assert.InDelta(t, math.Pi/2, n.Yaw(), 1e-12)
	for _, c := range n.Footprint() {
		assert.InDelta(t, 0.1, math.Abs(c.X()-10), 1e-12)
		assert.InDelta(t, 1.5, math.Abs(c.Y()), 1e-12)
	}
}

func TestNodeHighlight(t *testing.T) {
	n := NewBox("door", mgl64.Vec3{}, mgl64.Vec3{}, grey)

	n.SetHighlight(true)
	assert.True(t, n.Highlighted())
}
