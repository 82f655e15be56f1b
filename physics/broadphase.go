package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const tagBody = "body"

// minFootprint keeps degenerate query boxes inside at least one cell.
const minFootprint = 0.01

// broadphase buckets box bodies by their XZ footprint in a resolv space.
// The space has no negative coordinates, so every footprint is shifted by
// origin. Planes are unbounded and always returned.
type broadphase struct {
	space  *resolv.Space
	origin mgl64.Vec2
	planes []*Body
}

func newBroadphase(b Bounds) *broadphase {
	return &broadphase{
		space: resolv.NewSpace(
			int(b.Max.X()-b.Min.X()),
			int(b.Max.Y()-b.Min.Y()),
			b.CellSize, b.CellSize,
		),
		origin: b.Min,
	}
}

func (bp *broadphase) add(b *Body) {
	if _, ok := b.Shape.(Plane); ok {
		bp.planes = append(bp.planes, b)
		return
	}
	min, max, _ := b.Bounds()
	obj := resolv.NewObject(
		min.X()-bp.origin.X(), min.Z()-bp.origin.Y(),
		max.X()-min.X(), max.Z()-min.Z(),
		tagBody,
	)
	obj.Data = b
	b.broad = obj
	bp.space.Add(obj)
}

func (bp *broadphase) remove(b *Body) {
	if b.broad != nil {
		bp.space.Remove(b.broad)
		b.broad = nil
		return
	}
	for i, p := range bp.planes {
		if p == b {
			bp.planes = append(bp.planes[:i], bp.planes[i+1:]...)
			return
		}
	}
}

func (bp *broadphase) update(b *Body) {
	if b.broad == nil {
		return
	}
	min, max, _ := b.Bounds()
	b.broad.X = min.X() - bp.origin.X()
	b.broad.Y = min.Z() - bp.origin.Y()
	b.broad.W = max.X() - min.X()
	b.broad.H = max.Z() - min.Z()
	b.broad.Update()
}

// query calls fn once for every body whose footprint may overlap the XZ
// rectangle, plus every plane.
func (bp *broadphase) query(minX, minZ, maxX, maxZ float64, fn func(*Body)) {
	w := max(maxX-minX, minFootprint)
	h := max(maxZ-minZ, minFootprint)
	probe := resolv.NewObject(minX-bp.origin.X(), minZ-bp.origin.Y(), w, h)
	bp.space.Add(probe)
	defer bp.space.Remove(probe)

	if check := probe.Check(0, 0, tagBody); check != nil {
		seen := make(map[BodyID]struct{}, len(check.Objects))
		for _, o := range check.Objects {
			b, ok := o.Data.(*Body)
			if !ok {
				continue
			}
			if _, dup := seen[b.ID]; dup {
				continue
			}
			seen[b.ID] = struct{}{}
			fn(b)
		}
	}
	for _, p := range bp.planes {
		fn(p)
	}
}
