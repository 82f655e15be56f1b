package scene

import "github.com/automoto/skeld/physics"

// BodySource looks bodies up by ID.
type BodySource interface {
	Body(id physics.BodyID) (*physics.Body, bool)
}

// SyncTable ties physics bodies to the nodes that show them. Excluded
// bodies keep their entry but are skipped by Sync, which is how the
// player's transform stays owned by locomotion.
type SyncTable struct {
	links    map[physics.BodyID]*Node
	order    []physics.BodyID
	excluded map[physics.BodyID]struct{}
}

func NewSyncTable() *SyncTable {
	return &SyncTable{
		links:    make(map[physics.BodyID]*Node),
		excluded: make(map[physics.BodyID]struct{}),
	}
}

// Link associates body with n, replacing any earlier node.
func (t *SyncTable) Link(body *physics.Body, n *Node) {
	if body == nil || n == nil {
		return
	}
	if _, ok := t.links[body.ID]; !ok {
		t.order = append(t.order, body.ID)
	}
	t.links[body.ID] = n
}

func (t *SyncTable) Unlink(id physics.BodyID) {
	if _, ok := t.links[id]; !ok {
		return
	}
	delete(t.links, id)
	delete(t.excluded, id)
	for i, other := range t.order {
		if other == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Exclude keeps Sync from touching the node of id.
func (t *SyncTable) Exclude(id physics.BodyID) {
	t.excluded[id] = struct{}{}
}

func (t *SyncTable) Node(id physics.BodyID) (*Node, bool) {
	n, ok := t.links[id]
	return n, ok
}

func (t *SyncTable) Len() int {
	return len(t.links)
}

// Sync copies body transforms onto their nodes and returns how many
// nodes it updated. Bodies that left the world are skipped.
func (t *SyncTable) Sync(src BodySource) int {
	n := 0
	for _, id := range t.order {
		if _, skip := t.excluded[id]; skip {
			continue
		}
		body, ok := src.Body(id)
		if !ok {
			continue
		}
		node := t.links[id]
		node.SetPosition(body.Position())
		node.SetOrientation(body.Quaternion())
		n++
	}
	return n
}
