package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/scene"
)

// Pointer offset of the tooltip box, in pixels.
const tooltipOffset = 15

// TooltipPanel draws the hovered sphere's tooltip next to the pointer.
type TooltipPanel struct {
	renderer *Renderer
}

// NewTooltipPanel creates a tooltip panel.
func NewTooltipPanel() *TooltipPanel {
	return &TooltipPanel{renderer: NewRenderer()}
}

// Size returns the box size needed for tt.
func (p *TooltipPanel) Size(tt scene.Tooltip) (w, h int32) {
	th := p.renderer.Theme
	w = rl.MeasureText(tt.Name, th.HeaderFontSize)
	for _, l := range tt.Lines {
		lw := p.renderer.TextWidth(l.Text)
		if l.HasColor {
			lw += th.SwatchSize + 6
		}
		w = max(w, lw)
	}
	w += th.Padding * 2
	h = th.Padding*2 + p.renderer.HeaderHeight() + int32(len(tt.Lines))*th.LineHeight
	return w, h
}

// Draw renders tt near the pointer at (mx, my), flipping sides to stay on screen.
func (p *TooltipPanel) Draw(tt scene.Tooltip, mx, my, screenW, screenH int32) {
	r := p.renderer
	w, h := p.Size(tt)
	x, y := Place(mx, my, w, h, screenW, screenH)

	r.DrawPanel(x, y, w, h)
	cx := x + r.Theme.Padding
	cy := r.DrawSectionHeader(cx, y+r.Theme.Padding, tt.Name)
	for _, l := range tt.Lines {
		if l.HasColor {
			cy = r.DrawSwatchLine(cx, cy, ToColor(l.Color), l.Text)
			continue
		}
		cy = r.DrawLabel(cx, cy, l.Text)
	}
}

// Anchor picks the side of the pointer a w x h box fits on.
func Anchor(mx, my, w, h, screenW, screenH int32) PanelAnchor {
	right := mx+tooltipOffset+w <= screenW
	below := my+tooltipOffset+h <= screenH
	switch {
	case right && below:
		return AnchorBelowRight
	case below:
		return AnchorBelowLeft
	case right:
		return AnchorAboveRight
	default:
		return AnchorAboveLeft
	}
}

// Place returns the top-left corner of a w x h box anchored at the pointer.
func Place(mx, my, w, h, screenW, screenH int32) (x, y int32) {
	x, y = mx+tooltipOffset, my+tooltipOffset
	switch Anchor(mx, my, w, h, screenW, screenH) {
	case AnchorBelowLeft:
		x = mx - tooltipOffset - w
	case AnchorAboveRight:
		y = my - tooltipOffset - h
	case AnchorAboveLeft:
		x, y = mx-tooltipOffset-w, my-tooltipOffset-h
	}
	return max(x, 0), max(y, 0)
}
