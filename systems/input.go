package systems

import (
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/input"
	"github.com/automoto/skeld/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// watchedKeys are the bound keys polled each frame.
var watchedKeys []ebiten.Key

// UpdateInput feeds this frame's key events into the action state and
// reads mouse look while the cursor is captured.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)
	in.State.EndFrame()

	if !ebiten.IsFocused() {
		in.State.Reset()
		in.LookX, in.LookY = 0, 0
		in.HasCursor = false
		return
	}

	if watchedKeys == nil {
		watchedKeys = cfg.Input.WatchedKeys()
	}
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.State.KeyDown(input.Key(k))
		}
		if inpututil.IsKeyJustReleased(k) {
			in.State.KeyUp(input.Key(k))
		}
	}

	updatePointer(in)
}

// updatePointer captures the cursor on click and releases it on the
// release action. Look deltas are only read while captured.
func updatePointer(in *components.InputData) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		in.HasCursor = false
	}
	if in.State.JustPressed(input.ActionReleasePointer) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}

	in.Captured = ebiten.CursorMode() == ebiten.CursorModeCaptured
	x, y := ebiten.CursorPosition()
	applyCursor(in, x, y)
}

// applyCursor turns an absolute cursor position into this frame's look
// delta. The first captured frame only records the position.
func applyCursor(in *components.InputData, x, y int) {
	in.LookX, in.LookY = 0, 0
	if !in.Captured {
		in.HasCursor = false
		return
	}
	if in.HasCursor {
		in.LookX = float64(x - in.CursorX)
		in.LookY = float64(y - in.CursorY)
	}
	in.CursorX, in.CursorY, in.HasCursor = x, y, true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			State: input.NewState(cfg.Input.KeyBindings()),
		})
	}
	return components.Input.Get(entry)
}

// intent reads the movement actions.
func intent(s *input.State) motion.Intent {
	return motion.Intent{
		Forward:  s.Pressed(input.ActionMoveForward),
		Backward: s.Pressed(input.ActionMoveBackward),
		Left:     s.Pressed(input.ActionMoveLeft),
		Right:    s.Pressed(input.ActionMoveRight),
		Jump:     s.Pressed(input.ActionJump),
	}
}

// heldNames lists the held actions for the debug overlay.
func heldNames(s *input.State) []string {
	held := s.Held()
	names := make([]string, len(held))
	for i, a := range held {
		names[i] = a.String()
	}
	return names
}
