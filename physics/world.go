package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNilBody       = errors.New("physics: nil body")
	ErrDuplicateBody = errors.New("physics: body already added")
	ErrUnknownBody   = errors.New("physics: body not in world")
)

// Bounds is the XZ region covered by the broadphase.
type Bounds struct {
	Min, Max mgl64.Vec2
	CellSize int
}

// Config holds the world construction parameters.
type Config struct {
	Gravity        mgl64.Vec3
	Bounds         Bounds
	DefaultContact ContactMaterial
}

// World owns the rigid bodies and advances them in fixed steps.
type World struct {
	gravity mgl64.Vec3

	bodies []*Body
	byID   map[BodyID]*Body
	nextID BodyID

	contacts       map[materialPair]ContactMaterial
	defaultContact ContactMaterial

	broad       *broadphase
	accumulator float64
	time        float64
}

func NewWorld(cfg Config) *World {
	return &World{
		gravity:        cfg.Gravity,
		byID:           make(map[BodyID]*Body),
		contacts:       make(map[materialPair]ContactMaterial),
		defaultContact: cfg.DefaultContact,
		broad:          newBroadphase(cfg.Bounds),
	}
}

// AddBody assigns an ID to b and makes it visible to steps and raycasts.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.world != nil {
		return fmt.Errorf("add body %d: %w", b.ID, ErrDuplicateBody)
	}
	w.nextID++
	b.ID = w.nextID
	b.world = w
	w.bodies = append(w.bodies, b)
	w.byID[b.ID] = b
	w.broad.add(b)
	return nil
}

func (w *World) RemoveBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.world != w {
		return fmt.Errorf("remove body %d: %w", b.ID, ErrUnknownBody)
	}
	w.broad.remove(b)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	delete(w.byID, b.ID)
	b.world = nil
	return nil
}

func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Bodies returns the bodies in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Time returns the simulated time in seconds.
func (w *World) Time() float64 {
	return w.time
}

// Step advances the world by whole steps of fixedDt covering wallDt, taking
// at most maxSubSteps. Time that does not fit under the cap is dropped so a
// slow frame cannot build an ever growing backlog. Returns the steps taken.
func (w *World) Step(fixedDt, wallDt float64, maxSubSteps int) int {
	if wallDt <= 0 || fixedDt <= 0 || maxSubSteps <= 0 {
		return 0
	}

	w.accumulator += wallDt
	steps := 0
	for w.accumulator >= fixedDt && steps < maxSubSteps {
		w.internalStep(fixedDt)
		w.accumulator -= fixedDt
		steps++
	}
	if w.accumulator >= fixedDt {
		w.accumulator = math.Mod(w.accumulator, fixedDt)
	}
	return steps
}

func (w *World) internalStep(dt float64) {
	for _, b := range w.bodies {
		if b.Type != Dynamic {
			continue
		}
		b.Velocity = b.Velocity.Add(w.gravity.Mul(dt))
		if b.LinearDamping > 0 {
			b.Velocity = b.Velocity.Mul(math.Pow(1-b.LinearDamping, dt))
		}
		b.position = b.position.Add(b.Velocity.Mul(dt))
		w.broad.update(b)
	}

	for _, b := range w.bodies {
		if b.Type == Static || !b.CollisionResponse {
			continue
		}
		w.resolveContacts(b)
	}
	w.time += dt
}
