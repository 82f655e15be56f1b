package doors

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Motion tunes how doors open and who may reach them.
type Motion struct {
	Duration time.Duration // Length of one open or close run
	Offset   float64       // Slide distance when open
	Yaw      float64       // Turn in radians when open
	Radius   float64       // Interaction reach on the XZ plane
	Flash    time.Duration // Interaction flash length
}

// DefaultMotion is a half second slide of two units.
func DefaultMotion() Motion {
	return Motion{
		Duration: 500 * time.Millisecond,
		Offset:   2,
		Yaw:      math.Pi / 2,
		Radius:   3,
		Flash:    200 * time.Millisecond,
	}
}

// Registry holds every door of the station. Doors are never removed.
type Registry struct {
	Motion Motion
	doors  []*Door
}

func NewRegistry(m Motion) *Registry {
	return &Registry{Motion: m}
}

func (r *Registry) Add(d *Door) {
	r.doors = append(r.doors, d)
}

func (r *Registry) Doors() []*Door {
	return r.doors
}

func (r *Registry) Len() int {
	return len(r.doors)
}

// Nearest returns the closest door strictly within the interaction radius
// on the XZ plane. On equal distances the first registered door wins.
func (r *Registry) Nearest(pos mgl64.Vec3) (*Door, float64, bool) {
	var nearest *Door
	best := math.Inf(1)
	for _, d := range r.doors {
		p := d.Position()
		dist := math.Hypot(pos.X()-p.X(), pos.Z()-p.Z())
		if dist < r.Motion.Radius && dist < best {
			best = dist
			nearest = d
		}
	}
	return nearest, best, nearest != nil
}

// Interact toggles the nearest door in reach. It returns the door it
// acted on, or nil when none is in reach or that door is mid-run.
func (r *Registry) Interact(pos mgl64.Vec3, now time.Time) *Door {
	d, _, ok := r.Nearest(pos)
	if !ok {
		return nil
	}
	if !d.Toggle(now, r.Motion) {
		return nil
	}
	return d
}

// Update advances every door animation to now.
func (r *Registry) Update(now time.Time) {
	for _, d := range r.doors {
		d.Update(now)
	}
}

// Highlight lights the nearest door in reach and dims the rest. It
// returns the lit door, or nil.
func (r *Registry) Highlight(pos mgl64.Vec3) *Door {
	nearest, _, _ := r.Nearest(pos)
	for _, d := range r.doors {
		on := d == nearest
		if d.highlighted != on {
			d.setHighlight(on)
		}
	}
	return nearest
}

// Animating counts the doors with a run in flight.
func (r *Registry) Animating() int {
	n := 0
	for _, d := range r.doors {
		if d.Animating() {
			n++
		}
	}
	return n
}
