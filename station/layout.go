// Package station describes the rooms and corridors of the Skeld and
// builds them into a physics world and a scene.
package station

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/skeld/doors"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidRoom = errors.New("station: invalid room")

// Side is the wall of a room a doorway sits in.
type Side int

const (
	North Side = iota // minimum Z
	East              // maximum X
	South             // maximum Z
	West              // minimum X
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Doorway is a gap in a wall. X and Z are the doorway center, which lies
// on the wall line. Openings are gaps without a door.
type Doorway struct {
	Side    Side
	X, Z    float64
	Width   float64
	Opening bool
}

// Room is an axis aligned rectangle whose corner is X, Z.
type Room struct {
	Name     string
	X, Z     float64
	Width    float64 // along X
	Depth    float64 // along Z
	Doorways []Doorway
	Color    color.RGBA
}

// Corridor is a narrow room given by its width across and its length
// along the travel axis.
type Corridor struct {
	X, Z       float64
	Width      float64
	Length     float64
	Horizontal bool // travel along X
}

// Room returns the corridor as a room without doorways.
func (c Corridor) Room() Room {
	r := Room{Name: "corridor", X: c.X, Z: c.Z, Width: c.Width, Depth: c.Length, Color: corridorColor}
	if c.Horizontal {
		r.Width, r.Depth = c.Length, c.Width
	}
	return r
}

// Table is a static box standing on the floor.
type Table struct {
	X, Z                 float64 // center
	Width, Height, Depth float64
	Elevation            float64 // height of the bottom face
}

// Crate is a loose box that falls and can be shoved around.
type Crate struct {
	Position mgl64.Vec3
	Size     float64
	Mass     float64
}

// Layout is everything needed to build a station.
type Layout struct {
	Rooms         []Room
	Corridors     []Corridor
	Tables        []Table
	Crates        []Crate
	Markers       []Marker
	WallHeight    float64
	WallThickness float64
	Spawn         mgl64.Vec3
}

// Marker is a cosmetic box with no physics, like the emergency button.
type Marker struct {
	Name     string
	Position mgl64.Vec3
	Half     mgl64.Vec3
	Color    color.RGBA
}

// Segment is a straight run of wall between two points on one axis.
type Segment struct {
	StartX, StartZ float64
	EndX, EndZ     float64
}

// Horizontal reports whether the segment runs along X.
func (s Segment) Horizontal() bool {
	return s.StartZ == s.EndZ
}

// Length is the extent of the segment along its axis.
func (s Segment) Length() float64 {
	if s.Horizontal() {
		return s.EndX - s.StartX
	}
	return s.EndZ - s.StartZ
}

// DoorSpec is the placement of one door inside a doorway.
type DoorSpec struct {
	Room        string
	X, Z        float64 // center on the floor
	Width       float64 // along X
	Depth       float64 // along Z
	Orientation doors.Orientation
}

// wall returns the end points of the wall on side s, low to high.
func (r Room) wall(s Side) Segment {
	switch s {
	case North:
		return Segment{r.X, r.Z, r.X + r.Width, r.Z}
	case East:
		return Segment{r.X + r.Width, r.Z, r.X + r.Width, r.Z + r.Depth}
	case South:
		return Segment{r.X, r.Z + r.Depth, r.X + r.Width, r.Z + r.Depth}
	default:
		return Segment{r.X, r.Z, r.X, r.Z + r.Depth}
	}
}

// onWall reports whether d sits on the wall line of seg.
func (d Doorway) onWall(seg Segment) bool {
	if seg.Horizontal() {
		return d.Z == seg.StartZ && d.X >= seg.StartX && d.X <= seg.EndX
	}
	return d.X == seg.StartX && d.Z >= seg.StartZ && d.Z <= seg.EndZ
}

// Validate checks the room has an area and every doorway sits on its side.
func (r Room) Validate() error {
	if r.Width <= 0 || r.Depth <= 0 {
		return fmt.Errorf("room %q is %gx%g: %w", r.Name, r.Width, r.Depth, ErrInvalidRoom)
	}
	for _, d := range r.Doorways {
		if d.Width <= 0 || !d.onWall(r.wall(d.Side)) {
			return fmt.Errorf("room %q doorway %s at (%g, %g): %w", r.Name, d.Side, d.X, d.Z, ErrInvalidRoom)
		}
	}
	return nil
}

// Walls splits the four walls of the room around its doorways, returning
// the solid segments and a door for every doorway that is not an opening.
func (r Room) Walls(thickness float64) ([]Segment, []DoorSpec) {
	var segments []Segment
	var specs []DoorSpec
	for _, side := range []Side{North, East, South, West} {
		seg := r.wall(side)
		var onSide []Doorway
		for _, d := range r.Doorways {
			if d.Side == side && d.onWall(seg) {
				onSide = append(onSide, d)
			}
		}
		sortDoorways(onSide, seg.Horizontal())
		s, d := split(r.Name, seg, onSide, thickness)
		segments = append(segments, s...)
		specs = append(specs, d...)
	}
	return segments, specs
}

func sortDoorways(ds []Doorway, horizontal bool) {
	key := func(d Doorway) float64 {
		if horizontal {
			return d.X
		}
		return d.Z
	}
	sort.Slice(ds, func(i, j int) bool {
		return key(ds[i]) < key(ds[j])
	})
}

func split(room string, seg Segment, ds []Doorway, thickness float64) ([]Segment, []DoorSpec) {
	var segments []Segment
	var specs []DoorSpec
	h := seg.Horizontal()
	cur := seg.StartX
	end := seg.EndX
	if !h {
		cur, end = seg.StartZ, seg.EndZ
	}
	emit := func(from, to float64) {
		if to <= from {
			return
		}
		if h {
			segments = append(segments, Segment{from, seg.StartZ, to, seg.StartZ})
		} else {
			segments = append(segments, Segment{seg.StartX, from, seg.StartX, to})
		}
	}
	for _, d := range ds {
		center := d.X
		if !h {
			center = d.Z
		}
		emit(cur, center-d.Width/2)
		if !d.Opening {
			spec := DoorSpec{Room: room, X: d.X, Z: seg.StartZ, Width: d.Width, Depth: thickness, Orientation: doors.Horizontal}
			if !h {
				spec = DoorSpec{Room: room, X: seg.StartX, Z: d.Z, Width: thickness, Depth: d.Width, Orientation: doors.Vertical}
			}
			specs = append(specs, spec)
		}
		cur = center + d.Width/2
	}
	emit(cur, end)
	return segments, specs
}

// withOpenings returns a copy of c as a room, with an opening wherever a
// doorway of another room lies on one of its walls.
func withOpenings(c Corridor, rooms []Room) Room {
	r := c.Room()
	for _, side := range []Side{North, East, South, West} {
		seg := r.wall(side)
		for _, other := range rooms {
			for _, d := range other.Doorways {
				if d.Opening || !d.onWall(seg) {
					continue
				}
				r.Doorways = append(r.Doorways, Doorway{Side: side, X: d.X, Z: d.Z, Width: d.Width, Opening: true})
			}
		}
	}
	return r
}

// AllRooms returns the rooms followed by the corridors, each corridor
// opened up where it meets a room doorway.
func (l Layout) AllRooms() []Room {
	out := make([]Room, 0, len(l.Rooms)+len(l.Corridors))
	out = append(out, l.Rooms...)
	for _, c := range l.Corridors {
		out = append(out, withOpenings(c, l.Rooms))
	}
	return out
}

// Validate checks every room and corridor.
func (l Layout) Validate() error {
	if l.WallHeight <= 0 || l.WallThickness <= 0 {
		return fmt.Errorf("walls %gx%g: %w", l.WallHeight, l.WallThickness, ErrInvalidRoom)
	}
	for _, r := range l.AllRooms() {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
