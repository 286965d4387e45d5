package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/scene"
	"github.com/pthm-cable/orbit/ui"
)

// handleInput processes keyboard, mouse and file-drop input.
func (a *App) handleInput() {
	// Window resize propagation
	a.handleResize()

	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		rl.UnloadDroppedFiles()
		if len(files) > 0 {
			a.loadFile(files[0])
		}
	}

	// Keyboard shortcuts are off while a text box has focus
	if a.panel.Editing() || a.state.LastError != nil {
		a.state = scene.ClearHover(a.state)
		return
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		a.overlays.HandleKey(key)
	}

	a.handleCameraInput()
	a.handleHover()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h
	a.camera.Resize(float64(w), float64(h))
}

// overPanel reports whether the pointer is over the input panel.
func (a *App) overPanel(mouse rl.Vector2) bool {
	return a.overlays.IsEnabled(ui.OverlayPanel) && a.panel.Contains(mouse.X, mouse.Y)
}

// handleCameraInput processes orbit and zoom controls.
func (a *App) handleCameraInput() {
	mouse := rl.GetMousePosition()
	if a.overPanel(mouse) {
		return
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		speed := a.cfg.Camera.RotateSpeed
		a.camera.Rotate(-float64(delta.X)*speed, float64(delta.Y)*speed)
	}

	// Zoom controls: mouse wheel or +/- keys
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		step := a.cfg.Camera.ZoomStep
		if wheel < 0 {
			step = 1 / step
		}
		a.camera.ZoomBy(step)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.camera.ZoomBy(a.cfg.Camera.ZoomStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.camera.ZoomBy(1 / a.cfg.Camera.ZoomStep)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		a.camera.Reset()
	}
}

// handleHover picks the sphere under the pointer.
func (a *App) handleHover() {
	mouse := rl.GetMousePosition()
	if a.overPanel(mouse) {
		a.state = scene.ClearHover(a.state)
		return
	}
	origin, dir := a.camera.Ray(float64(mouse.X), float64(mouse.Y))
	a.state = scene.Hover(a.state, origin, dir, minPickRadius)
}
