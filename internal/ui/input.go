package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a keyboard shortcut.
type Command int

const (
	CommandNone Command = iota
	CommandNewGame
	CommandFlip
	CommandToggleHints
	CommandToggleSound
	CommandCancel
)

var commandKeys = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyN, CommandNewGame},
	{ebiten.KeyF, CommandFlip},
	{ebiten.KeyH, CommandToggleHints},
	{ebiten.KeyS, CommandToggleSound},
	{ebiten.KeyEscape, CommandCancel},
}

// InputHandler tracks the mouse and keyboard for one frame.
type InputHandler struct {
	mouseX, mouseY   int // Logical coordinates (unscaled)
	leftJustPressed  bool
	leftJustReleased bool
	command          Command
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update reads the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()

	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouseX = int(float64(rawX) / scale)
	ih.mouseY = int(float64(rawY) / scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	ih.command = CommandNone
	for _, ck := range commandKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			ih.command = ck.cmd
			break
		}
	}
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// Command returns the shortcut pressed this frame, if any.
func (ih *InputHandler) Command() Command {
	return ih.command
}
