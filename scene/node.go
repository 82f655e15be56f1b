package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeID identifies a node inside a Scene. Zero is never assigned.
type NodeID uint32

// Kind is the drawable primitive behind a node.
type Kind int

const (
	KindBox Kind = iota
	KindPlane
	KindMarker
)

// Node is a visual element with a transform.
type Node struct {
	ID          NodeID
	Name        string
	Kind        Kind
	HalfExtents mgl64.Vec3
	Color       color.RGBA
	Emissive    color.RGBA
	Visible     bool

	position    mgl64.Vec3
	orientation mgl64.Quat
	highlighted bool
	scene       *Scene
}

// NewBox returns a visible box node.
func NewBox(name string, halfExtents, position mgl64.Vec3, c color.RGBA) *Node {
	return &Node{
		Name:        name,
		Kind:        KindBox,
		HalfExtents: halfExtents,
		Color:       c,
		Visible:     true,
		position:    position,
		orientation: mgl64.QuatIdent(),
	}
}

// NewMarker returns a node drawn as a point, like the player debug mesh.
func NewMarker(name string, halfExtents, position mgl64.Vec3, c color.RGBA) *Node {
	n := NewBox(name, halfExtents, position, c)
	n.Kind = KindMarker
	return n
}

func (n *Node) Position() mgl64.Vec3 {
	return n.position
}

func (n *Node) Orientation() mgl64.Quat {
	return n.orientation
}

func (n *Node) SetPosition(p mgl64.Vec3) {
	n.position = p
}

func (n *Node) SetOrientation(q mgl64.Quat) {
	n.orientation = q
}

// SetHighlight toggles the emissive tint.
func (n *Node) SetHighlight(on bool) {
	n.highlighted = on
}

func (n *Node) Highlighted() bool {
	return n.highlighted
}

// Yaw returns the rotation of the node about the vertical axis in radians.
func (n *Node) Yaw() float64 {
	x := n.orientation.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(-x.Z(), x.X())
}

// Footprint returns the four XZ corners of the node's box.
func (n *Node) Footprint() [4]mgl64.Vec2 {
	h := n.HalfExtents
	local := [4]mgl64.Vec3{{-h.X(), 0, -h.Z()}, {h.X(), 0, -h.Z()}, {h.X(), 0, h.Z()}, {-h.X(), 0, h.Z()}}
	var out [4]mgl64.Vec2
	for i, c := range local {
		w := n.position.Add(n.orientation.Rotate(c))
		out[i] = mgl64.Vec2{w.X(), w.Z()}
	}
	return out
}
