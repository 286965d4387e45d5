package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the stats HUD.
type HUDData struct {
	Title     string
	Mode      string
	Spheres   int
	Particles int
	FPS       int32
	BuildTime string
}

// HUD renders the stats corner and the control legend.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the stats block at (x, y).
func (h *HUD) Draw(x, y int32, data HUDData) {
	rl.DrawText(data.Title, x, y, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Mode: %s | Spheres: %d | Particles: %s", data.Mode, data.Spheres, humanize.Comma(int64(data.Particles))),
		x, y+25, 16, rl.LightGray,
	)
	status := fmt.Sprintf("FPS: %d", data.FPS)
	if data.BuildTime != "" {
		status += " | Last build: " + data.BuildTime
	}
	rl.DrawText(status, x, y+45, 16, rl.LightGray)
}

// DrawControls renders the control legend at the bottom of the screen
// with the overlay toggles above it.
func (h *HUD) DrawControls(x, screenHeight int32, controls string, overlays *Overlays) {
	rl.DrawText(controls, x, screenHeight-25, 14, rl.Gray)

	cx := x
	y := screenHeight - 45
	for _, info := range overlays.Legend() {
		cx += h.drawToggle(cx, y, info, overlays.IsEnabled(info.Overlay)) + 12
	}
}

// drawToggle draws one overlay toggle and returns its width.
func (h *HUD) drawToggle(x, y int32, info OverlayInfo, enabled bool) int32 {
	r := h.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	text := fmt.Sprintf("%s [%s]", info.Name, info.KeyLabel)
	rl.DrawText(text, x+12, y, r.Theme.FontSize, nameColor)
	return 12 + r.TextWidth(text)
}
