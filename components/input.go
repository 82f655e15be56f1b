package components

import (
	"github.com/automoto/skeld/input"
	"github.com/yohamta/donburi"
)

// InputData stores the action state and this frame's mouse look.
type InputData struct {
	State *input.State

	LookX, LookY float64 // Cursor travel this frame while captured
	Captured     bool

	CursorX, CursorY int
	HasCursor        bool // CursorX/Y hold a previous captured position
}

var Input = donburi.NewComponentType[InputData]()
