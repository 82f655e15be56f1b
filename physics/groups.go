package physics

// Group is a collision filter bitmask.
type Group uint32

const (
	GroupDefault Group = 1 << iota
	GroupPlayer
	GroupStatic
	GroupObjects
	GroupTask
	GroupVents
	GroupDoor
)

// GroupAll matches every group.
const GroupAll Group = ^Group(0)

// Has reports whether any bit of other is set in g.
func (g Group) Has(other Group) bool {
	return g&other != 0
}

// Without returns g with the bits of other cleared.
func (g Group) Without(other Group) Group {
	return g &^ other
}

func (g Group) String() string {
	names := []struct {
		g    Group
		name string
	}{
		{GroupDefault, "default"},
		{GroupPlayer, "player"},
		{GroupStatic, "static"},
		{GroupObjects, "objects"},
		{GroupTask, "task"},
		{GroupVents, "vents"},
		{GroupDoor, "door"},
	}
	s := ""
	for _, n := range names {
		if g.Has(n.g) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}
