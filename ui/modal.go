package ui

import (
	"slices"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ExitKey is the key that closes the window. None: Escape belongs to the
// error modal, and raylib's default would quit with the form unsaved.
const ExitKey int32 = rl.KeyNull

// DismissKeys close the error modal, like its OK button.
var DismissKeys = []int32{rl.KeyEnter, rl.KeyKpEnter, rl.KeyEscape}

// IsDismissKey reports whether key closes the error modal.
func IsDismissKey(key int32) bool {
	return key != ExitKey && slices.Contains(DismissKeys, key)
}

// ErrorModal shows a blocking error message with an OK button.
type ErrorModal struct {
	width, height int32
}

// NewErrorModal creates an error modal.
func NewErrorModal() *ErrorModal {
	return &ErrorModal{width: 420, height: 140}
}

// Draw renders err centered on screen and reports whether it was dismissed.
func (m *ErrorModal) Draw(err error, screenW, screenH int32) bool {
	if err == nil {
		return false
	}
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.5))
	bounds := rect((screenW-m.width)/2, (screenH-m.height)/2, m.width, m.height)
	result := gui.MessageBox(bounds, "#191#Input error", err.Error(), "OK")
	if result >= 0 {
		return true
	}
	for _, key := range DismissKeys {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
