package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the debug message
type MessageStateData struct {
	Text  string
	Until time.Time // Message hides after this
}

var MessageState = donburi.NewComponentType[MessageStateData]()
