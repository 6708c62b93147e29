package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/quality"
)

// keyState is the slice of raylib's input API the frontend reads.
type keyState interface {
	Down(key int32) bool
	Pressed(key int32) bool
	Wheel() float32
}

type raylibKeys struct{}

func (raylibKeys) Down(key int32) bool    { return rl.IsKeyDown(key) }
func (raylibKeys) Pressed(key int32) bool { return rl.IsKeyPressed(key) }
func (raylibKeys) Wheel() float32         { return rl.GetMouseWheelMove() }

// Keyboard is the input.Source for the picker: Escape cancels, Enter
// confirms, the wheel scrolls and the arrow keys hold.
type Keyboard struct {
	keys keyState
}

func NewKeyboard() *Keyboard {
	return &Keyboard{keys: raylibKeys{}}
}

func (k *Keyboard) Poll() input.Frame {
	return readFrame(k.keys)
}

func readFrame(k keyState) input.Frame {
	f := input.Frame{
		Cancel:  k.Pressed(rl.KeyEscape),
		Confirm: k.Pressed(rl.KeyEnter) || k.Pressed(rl.KeyKpEnter),
		Up:      k.Down(rl.KeyUp) || k.Down(rl.KeyW),
		Down:    k.Down(rl.KeyDown) || k.Down(rl.KeyS),
	}
	if wheel := k.Wheel(); wheel > 0 {
		f.Scroll = 1
	} else if wheel < 0 {
		f.Scroll = -1
	}
	switch {
	case f.Up:
		f.DirectionPressed = k.Pressed(rl.KeyUp) || k.Pressed(rl.KeyW)
	case f.Down:
		f.DirectionPressed = k.Pressed(rl.KeyDown) || k.Pressed(rl.KeyS)
	}
	return f
}

type action int

const (
	actionNone action = iota
	actionSleep
	actionRest
	actionStand
	actionWait
	actionToggleDebug
	actionToggleClock
	actionQuit
)

type hotkey struct {
	action  action
	surface quality.Surface
	long    bool // Shift was held
}

var surfaceKeys = []struct {
	key     int32
	surface quality.Surface
}{
	{rl.KeyOne, quality.SurfaceSeat},
	{rl.KeyTwo, quality.SurfaceFurniture},
	{rl.KeyThree, quality.SurfaceVehicleFront},
	{rl.KeyFour, quality.SurfaceVehicleRear},
	{rl.KeyFive, quality.SurfaceBed},
}

// readHotkey returns the first world hotkey pressed this frame. Hotkeys are
// ignored while the picker or a sleep owns the keyboard.
func readHotkey(k keyState, busy bool) hotkey {
	if busy {
		return hotkey{}
	}
	switch {
	case k.Pressed(rl.KeyZ):
		return hotkey{action: actionSleep}
	case k.Pressed(rl.KeyF3):
		return hotkey{action: actionToggleDebug}
	case k.Pressed(rl.KeyT):
		return hotkey{action: actionToggleClock}
	case k.Pressed(rl.KeyH):
		return hotkey{action: actionWait, long: shiftDown(k)}
	case k.Pressed(rl.KeyZero), k.Pressed(rl.KeyX):
		return hotkey{action: actionStand}
	case k.Pressed(rl.KeyQ):
		return hotkey{action: actionQuit}
	}
	for _, s := range surfaceKeys {
		if k.Pressed(s.key) {
			return hotkey{action: actionRest, surface: s.surface}
		}
	}
	return hotkey{}
}

func shiftDown(k keyState) bool {
	return k.Down(rl.KeyLeftShift) || k.Down(rl.KeyRightShift)
}
