package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int
	leftJustPressed bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update refreshes the input state. Call once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current mouse position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsKeyPressed returns true if the specified key is currently pressed.
func IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}
