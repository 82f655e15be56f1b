package config

import (
	"github.com/automoto/skeld/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys bound to a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[input.Action]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// KeyBindings converts the ebiten bindings to the input package's keys.
func (c InputConfig) KeyBindings() input.Bindings {
	b := make(input.Bindings, len(c.Bindings))
	for action, binding := range c.Bindings {
		for _, k := range binding.Keys {
			b[action] = append(b[action], input.Key(k))
		}
	}
	return b
}

// WatchedKeys lists every bound key once.
func (c InputConfig) WatchedKeys() []ebiten.Key {
	seen := make(map[ebiten.Key]bool)
	var keys []ebiten.Key
	for a := input.ActionNone; a < input.ActionCount; a++ {
		for _, k := range c.Bindings[a].Keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

func init() {
	Input = InputConfig{
		Bindings: map[input.Action]InputBinding{
			input.ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			input.ActionMoveBackward: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			input.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			input.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			input.ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			input.ActionInteract: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			input.ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			input.ActionToggleColliders: {
				Keys: []ebiten.Key{ebiten.KeyF4},
			},
			input.ActionReleasePointer: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
