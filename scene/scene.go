package scene

import (
	"errors"
	"fmt"
)

var (
	ErrNilNode       = errors.New("scene: nil node")
	ErrDuplicateNode = errors.New("scene: node already added")
	ErrUnknownNode   = errors.New("scene: node not in scene")
)

// Scene is the set of visual nodes drawn each frame.
type Scene struct {
	nodes  []*Node
	nextID NodeID
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Add(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.scene != nil {
		return fmt.Errorf("add node %q: %w", n.Name, ErrDuplicateNode)
	}
	s.nextID++
	n.ID = s.nextID
	n.scene = s
	s.nodes = append(s.nodes, n)
	return nil
}

func (s *Scene) Remove(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.scene != s {
		return fmt.Errorf("remove node %q: %w", n.Name, ErrUnknownNode)
	}
	for i, other := range s.nodes {
		if other == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	n.scene = nil
	return nil
}

// Nodes returns the nodes in insertion order. The slice must not be modified.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

func (s *Scene) Len() int {
	return len(s.nodes)
}
