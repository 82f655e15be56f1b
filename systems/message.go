package systems

import (
	"time"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage puts text in the debug overlay for the configured duration.
func ShowMessage(ecs *ecs.ECS, text string) {
	showMessage(getOrCreateMessage(ecs), text, time.Now())
}

func showMessage(msg *components.MessageStateData, text string, now time.Time) {
	msg.Text = text
	msg.Until = now.Add(cfg.Debug.MessageDuration)
}

// activeMessage returns the message text while it has not expired.
func activeMessage(msg *components.MessageStateData, now time.Time) string {
	if msg.Text == "" || !now.Before(msg.Until) {
		return ""
	}
	return msg.Text
}

// getOrCreateMessage returns the singleton message state, creating if needed
func getOrCreateMessage(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
