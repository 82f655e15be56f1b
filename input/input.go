// Package input turns raw key events into a per-frame action map.
package input

// Action is a logical control.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionInteract
	ActionToggleDebug
	ActionToggleColliders
	ActionReleasePointer
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionMoveForward:     "forward",
	ActionMoveBackward:    "backward",
	ActionMoveLeft:        "left",
	ActionMoveRight:       "right",
	ActionJump:            "jump",
	ActionInteract:        "interact",
	ActionToggleDebug:     "debug",
	ActionToggleColliders: "colliders",
	ActionReleasePointer:  "release",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Key is a physical key identifier.
type Key int

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]Key

// State is the set of held actions. Key events may arrive at any time;
// the game loop reads it once per frame and then calls EndFrame.
type State struct {
	bindings Bindings
	held     map[Key]bool
	current  [ActionCount]bool
	previous [ActionCount]bool
}

func NewState(b Bindings) *State {
	return &State{bindings: b, held: make(map[Key]bool)}
}

func (s *State) KeyDown(k Key) {
	s.held[k] = true
	s.refresh()
}

func (s *State) KeyUp(k Key) {
	delete(s.held, k)
	s.refresh()
}

// Reset releases every key, e.g. when the window loses focus.
func (s *State) Reset() {
	clear(s.held)
	s.refresh()
}

func (s *State) refresh() {
	for a := Action(0); a < ActionCount; a++ {
		s.current[a] = false
		for _, k := range s.bindings[a] {
			if s.held[k] {
				s.current[a] = true
				break
			}
		}
	}
}

// Pressed reports whether a is held.
func (s *State) Pressed(a Action) bool {
	return a >= 0 && a < ActionCount && s.current[a]
}

// JustPressed reports whether a went down since the last EndFrame.
func (s *State) JustPressed(a Action) bool {
	return s.Pressed(a) && !s.previous[a]
}

// EndFrame makes the current state the baseline for JustPressed.
func (s *State) EndFrame() {
	s.previous = s.current
}

// Held lists the held actions in declaration order.
func (s *State) Held() []Action {
	var out []Action
	for a := ActionNone + 1; a < ActionCount; a++ {
		if s.current[a] {
			out = append(out, a)
		}
	}
	return out
}
