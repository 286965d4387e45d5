package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws themed panel primitives. The Draw* helpers that lay out
// text return the y of the next line.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel fills a bordered rectangle.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a title with a rule under it.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	th := r.Theme
	rl.DrawText(title, x, y, th.HeaderFontSize, th.SectionHeader)
	ruleY := y + th.HeaderFontSize + 2
	rl.DrawLine(x, ruleY, x+rl.MeasureText(title, th.HeaderFontSize), ruleY, rl.Fade(th.SectionHeader, 0.4))
	return y + r.HeaderHeight()
}

// HeaderHeight is the vertical space DrawSectionHeader takes.
func (r *Renderer) HeaderHeight() int32 {
	return r.Theme.HeaderFontSize + 2 + r.Theme.LineHeight/2
}

// DrawLabel draws one line of muted text.
func (r *Renderer) DrawLabel(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.LineHeight
}

// DrawSwatchLine draws a color swatch followed by text.
func (r *Renderer) DrawSwatchLine(x, y int32, color rl.Color, text string) int32 {
	s := r.Theme.SwatchSize
	rl.DrawRectangle(x, y+1, s, s, color)
	rl.DrawText(text, x+s+6, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// TextWidth measures text in the body font.
func (r *Renderer) TextWidth(text string) int32 {
	return rl.MeasureText(text, r.Theme.FontSize)
}
