package doors

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestWithinRadius(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	far, _, _ := newDoor(t, mgl64.Vec3{10, 1.5, 0}, Horizontal)
	near, _, _ := newDoor(t, mgl64.Vec3{2, 1.5, 0}, Horizontal)
	r.Add(far)
	r.Add(near)

	got, dist, ok := r.Nearest(mgl64.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Same(t, near, got)
	assert.InDelta(t, 2, dist, 1e-12)

	_, _, ok = r.Nearest(mgl64.Vec3{6, 1, 0})
	assert.False(t, ok, "both doors are four units away")
}

func TestNearestIgnoresHeight(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	d, _, _ := newDoor(t, mgl64.Vec3{0, 1.5, 2.5}, Horizontal)
	r.Add(d)

	_, _, ok := r.Nearest(mgl64.Vec3{0, 40, 0})
	assert.True(t, ok)
}

func TestNearestTieKeepsFirst(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	a, _, _ := newDoor(t, mgl64.Vec3{-1, 1.5, 0}, Horizontal)
	b, _, _ := newDoor(t, mgl64.Vec3{1, 1.5, 0}, Horizontal)
	r.Add(a)
	r.Add(b)

	got, _, ok := r.Nearest(mgl64.Vec3{})
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestInteractOutOfRangeIsNoop(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	d, _, _ := newDoor(t, mgl64.Vec3{0, 1.5, 0}, Horizontal)
	r.Add(d)

	assert.Nil(t, r.Interact(mgl64.Vec3{3, 1, 0}, epoch))
	assert.Equal(t, Closed, d.State())
	assert.Nil(t, d.Animation())
	assert.Zero(t, r.Animating())
}

func TestInteractTogglesNearest(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	a, _, _ := newDoor(t, mgl64.Vec3{0, 1.5, 0}, Horizontal)
	b, _, _ := newDoor(t, mgl64.Vec3{20, 1.5, 0}, Vertical)
	r.Add(a)
	r.Add(b)

	assert.Same(t, a, r.Interact(mgl64.Vec3{1, 1, 1}, epoch))
	assert.Nil(t, r.Interact(mgl64.Vec3{1, 1, 1}, epoch.Add(10*time.Millisecond)), "mid-run")
	assert.Same(t, b, r.Interact(mgl64.Vec3{19, 1, 1}, epoch.Add(20*time.Millisecond)))
	assert.Equal(t, 2, r.Animating())

	r.Update(epoch.Add(time.Second))

	assert.True(t, a.IsOpen())
	assert.True(t, b.IsOpen())
	assert.Zero(t, r.Animating())
}

func TestHighlightTracksNearest(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	a, meshA, _ := newDoor(t, mgl64.Vec3{0, 1.5, 0}, Horizontal)
	b, meshB, _ := newDoor(t, mgl64.Vec3{4, 1.5, 0}, Horizontal)
	r.Add(a)
	r.Add(b)

	assert.Same(t, a, r.Highlight(mgl64.Vec3{1, 1, 0}))
	assert.True(t, a.Highlighted())
	assert.True(t, meshA.highlight)
	assert.False(t, meshB.highlight)

	assert.Same(t, b, r.Highlight(mgl64.Vec3{3.5, 1, 0}))
	assert.False(t, meshA.highlight)
	assert.True(t, meshB.highlight)

	assert.Nil(t, r.Highlight(mgl64.Vec3{30, 1, 0}))
	assert.False(t, a.Highlighted())
	assert.False(t, b.Highlighted())
}

func TestHighlightIgnoresAnimationState(t *testing.T) {
	r := NewRegistry(DefaultMotion())
	d, _, _ := newDoor(t, mgl64.Vec3{}, Horizontal)
	r.Add(d)
	r.Interact(mgl64.Vec3{}, epoch)

	r.Update(epoch.Add(100 * time.Millisecond))

	assert.Same(t, d, r.Highlight(mgl64.Vec3{}))
	assert.True(t, d.Highlighted())
}
