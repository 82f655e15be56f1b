package station

import (
	"fmt"
	"image/color"

	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	wallColor  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	doorColor  = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	frameColor = color.RGBA{0x44, 0x44, 0x44, 0xff}
)

// frameThickness is how far a door frame sticks out around its door.
const frameThickness = 0.1

// staticMask is what walls and the floor collide with.
const staticMask = physics.GroupDefault | physics.GroupPlayer | physics.GroupObjects

// ContactMaterials are the pairings of the player with the station.
// Walls have no friction so the player slides along them.
func ContactMaterials() []physics.ContactMaterial {
	return []physics.ContactMaterial{
		{A: physics.MaterialPlayer, B: physics.MaterialWall, Friction: 0, Restitution: 0.1},
		{A: physics.MaterialPlayer, B: physics.MaterialFloor, Friction: 0.01, Restitution: 0},
		{A: physics.MaterialPlayer, B: physics.MaterialObject, Friction: 0.01, Restitution: 0.1},
	}
}

// Target is where a station gets built.
type Target struct {
	World *physics.World
	Scene *scene.Scene
	Sync  *scene.SyncTable
	Doors *doors.Registry
}

// Station is a built layout.
type Station struct {
	Layout Layout
	Floor  *physics.Body
	Walls  []*physics.Body
	Tables []*physics.Body
	Crates []*physics.Body
	Doors  []*doors.Door
}

// Build validates l and creates its bodies, nodes and doors in t.
func Build(l Layout, t Target) (*Station, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("build station: %w", err)
	}
	st := &Station{Layout: l}
	for _, cm := range ContactMaterials() {
		t.World.AddContactMaterial(cm)
	}

	st.Floor = physics.NewPlane(mgl64.Vec3{}, mgl64.QuatIdent())
	st.Floor.CollisionGroup = physics.GroupStatic
	st.Floor.CollisionMask = staticMask
	st.Floor.Material = physics.MaterialFloor
	if err := t.World.AddBody(st.Floor); err != nil {
		return nil, fmt.Errorf("build floor: %w", err)
	}

	for _, r := range l.AllRooms() {
		if err := st.buildRoom(r, l, t); err != nil {
			return nil, err
		}
	}
	for i, tb := range l.Tables {
		if err := st.buildTable(tb, t); err != nil {
			return nil, fmt.Errorf("build table %d: %w", i, err)
		}
	}
	for i, c := range l.Crates {
		if err := st.buildCrate(c, t); err != nil {
			return nil, fmt.Errorf("build crate %d: %w", i, err)
		}
	}
	for _, m := range l.Markers {
		if err := t.Scene.Add(scene.NewBox(m.Name, m.Half, m.Position, m.Color)); err != nil {
			return nil, fmt.Errorf("build %s: %w", m.Name, err)
		}
	}
	return st, nil
}

func (st *Station) buildRoom(r Room, l Layout, t Target) error {
	floor := &scene.Node{
		Name:        r.Name,
		Kind:        scene.KindPlane,
		HalfExtents: mgl64.Vec3{r.Width / 2, 0, r.Depth / 2},
		Color:       r.Color,
		Visible:     true,
	}
	floor.SetPosition(mgl64.Vec3{r.X + r.Width/2, 0, r.Z + r.Depth/2})
	floor.SetOrientation(mgl64.QuatIdent())
	if err := t.Scene.Add(floor); err != nil {
		return fmt.Errorf("build %s floor: %w", r.Name, err)
	}

	segments, specs := r.Walls(l.WallThickness)
	for _, seg := range segments {
		if err := st.buildWall(r.Name, seg, l, t); err != nil {
			return err
		}
	}
	for _, spec := range specs {
		if err := st.buildDoor(spec, l, t); err != nil {
			return err
		}
	}
	return nil
}

func (st *Station) buildWall(room string, seg Segment, l Layout, t Target) error {
	half := mgl64.Vec3{seg.Length() / 2, l.WallHeight / 2, l.WallThickness / 2}
	center := mgl64.Vec3{seg.StartX + seg.Length()/2, l.WallHeight / 2, seg.StartZ}
	if !seg.Horizontal() {
		half = mgl64.Vec3{l.WallThickness / 2, l.WallHeight / 2, seg.Length() / 2}
		center = mgl64.Vec3{seg.StartX, l.WallHeight / 2, seg.StartZ + seg.Length()/2}
	}
	body := physics.NewBox(0, half, center)
	body.CollisionGroup = physics.GroupStatic
	body.CollisionMask = staticMask
	body.Material = physics.MaterialWall
	node := scene.NewBox(room+" wall", half, center, wallColor)
	if err := st.add(body, node, t); err != nil {
		return fmt.Errorf("build %s wall: %w", room, err)
	}
	st.Walls = append(st.Walls, body)
	return nil
}

func (st *Station) buildDoor(spec DoorSpec, l Layout, t Target) error {
	half := mgl64.Vec3{spec.Width / 2, l.WallHeight / 2, spec.Depth / 2}
	center := mgl64.Vec3{spec.X, l.WallHeight / 2, spec.Z}

	body := physics.NewBox(0, half, center)
	body.CollisionGroup = physics.GroupDoor
	body.CollisionMask = physics.GroupDefault | physics.GroupPlayer | physics.GroupObjects
	mesh := scene.NewBox(spec.Room+" door", half, center, doorColor)
	if err := st.add(body, mesh, t); err != nil {
		return fmt.Errorf("build %s door: %w", spec.Room, err)
	}

	frameHalf := half.Add(mgl64.Vec3{0, frameThickness, 0})
	if spec.Orientation == doors.Horizontal {
		frameHalf[0] += frameThickness
	} else {
		frameHalf[2] += frameThickness
	}
	frame := scene.NewBox(spec.Room+" door frame", frameHalf, center, frameColor)
	if err := t.Scene.Add(frame); err != nil {
		return fmt.Errorf("build %s door frame: %w", spec.Room, err)
	}

	d := doors.New(mesh, frame, body, spec.Orientation)
	t.Doors.Add(d)
	st.Doors = append(st.Doors, d)
	return nil
}

func (st *Station) buildTable(tb Table, t Target) error {
	half := mgl64.Vec3{tb.Width / 2, tb.Height / 2, tb.Depth / 2}
	center := mgl64.Vec3{tb.X, tb.Elevation + tb.Height/2, tb.Z}
	body := physics.NewBox(0, half, center)
	body.CollisionGroup = physics.GroupObjects
	body.CollisionMask = physics.GroupDefault | physics.GroupPlayer
	body.Material = physics.MaterialObject
	if err := st.add(body, scene.NewBox("table", half, center, tableColor), t); err != nil {
		return err
	}
	st.Tables = append(st.Tables, body)
	return nil
}

func (st *Station) buildCrate(c Crate, t Target) error {
	half := mgl64.Vec3{c.Size / 2, c.Size / 2, c.Size / 2}
	body := physics.NewBox(c.Mass, half, c.Position)
	body.CollisionGroup = physics.GroupObjects
	body.CollisionMask = physics.GroupDefault | physics.GroupStatic | physics.GroupPlayer
	body.Material = physics.MaterialObject
	if err := st.add(body, scene.NewBox("crate", half, c.Position, crateColor), t); err != nil {
		return err
	}
	st.Crates = append(st.Crates, body)
	return nil
}

func (st *Station) add(body *physics.Body, node *scene.Node, t Target) error {
	if err := t.World.AddBody(body); err != nil {
		return err
	}
	if err := t.Scene.Add(node); err != nil {
		return err
	}
	t.Sync.Link(body, node)
	return nil
}

// RoomAt names the room containing the XZ point, or "" when it is in
// none. Corridors are reported as "corridor".
func (st *Station) RoomAt(x, z float64) string {
	for _, r := range st.Layout.Rooms {
		if x >= r.X && x <= r.X+r.Width && z >= r.Z && z <= r.Z+r.Depth {
			return r.Name
		}
	}
	for _, c := range st.Layout.Corridors {
		r := c.Room()
		if x >= r.X && x <= r.X+r.Width && z >= r.Z && z <= r.Z+r.Depth {
			return r.Name
		}
	}
	return ""
}
