package components

import (
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/yohamta/donburi"
)

// BodyData ties an entity to its rigid body and the node that shows it.
type BodyData struct {
	Body *physics.Body
	Node *scene.Node
}

var Body = donburi.NewComponentType[BodyData]()
