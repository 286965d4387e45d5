package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
)

// Action is what the user asked for while the panel was drawn.
type Action int

const (
	ActionNone Action = iota
	ActionVisualize
	ActionPaste
	ActionDisplayChanged
)

// Maximum text length of panel text boxes.
const textBoxSize = 64

// Column widths of a holding row.
const (
	colMajor  = 80
	colCustom = 60
	colMinor  = 80
	colValue  = 80
	colRemove = 22
	colGap    = 4
)

// InputPanel draws the holdings form down the left edge of the screen.
type InputPanel struct {
	renderer *Renderer
	width    int32
	maxRows  int

	// Key of the text box in edit mode, "" when none
	editing string
}

// NewInputPanel creates a panel of the given width showing up to maxRows rows.
func NewInputPanel(width int32, maxRows int) *InputPanel {
	return &InputPanel{
		renderer: NewRenderer(),
		width:    width,
		maxRows:  maxRows,
	}
}

// Width returns the panel width.
func (p *InputPanel) Width() int32 {
	return p.width
}

// Contains reports whether a screen point is over the panel.
func (p *InputPanel) Contains(x, y float32) bool {
	return x >= 0 && x < float32(p.width) && y >= 0
}

// Editing reports whether a text box has keyboard focus.
func (p *InputPanel) Editing() bool {
	return p.editing != ""
}

// VisibleRows returns how many rows fit in a screen of height screenH.
func (p *InputPanel) VisibleRows(screenH int32) int {
	th := p.renderer.Theme
	// Title, mode toggle, add button, bulk section, visualize, display toggle
	fixed := th.Padding*2 + th.LineHeight*7 + th.RowHeight*6
	n := int((screenH - fixed) / (th.RowHeight + colGap))
	return max(1, min(n, p.maxRows))
}

// Draw renders the panel and applies edits to f.
func (p *InputPanel) Draw(f *Form, screenH int32) Action {
	r := p.renderer
	th := r.Theme
	action := ActionNone

	r.DrawPanel(0, 0, p.width, screenH)
	x := th.Padding
	y := th.Padding
	inner := p.width - th.Padding*2

	y = r.DrawSectionHeader(x, y, "Holdings")

	mode := gui.ToggleGroup(rect(x, y, inner/2, th.RowHeight), "Amount;Percentage", int32(f.Mode))
	f.Mode = portfolio.Mode(mode)
	y += th.RowHeight + th.LineHeight/2

	r.DrawLabel(x, y, valueHeader(f.Mode))
	y += th.LineHeight

	visible := p.VisibleRows(screenH)
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && p.Contains(rl.GetMousePosition().X, rl.GetMousePosition().Y) {
		f.ScrollBy(-int(wheel), visible)
	}

	end := min(len(f.Rows), f.Scroll+visible)
	remove := -1
	options := strings.Join(MajorOptions(), ";")
	for i := f.Scroll; i < end; i++ {
		if p.drawRow(f, i, x, y, options) {
			remove = i
		}
		y += th.RowHeight + colGap
	}
	if remove >= 0 {
		p.editing = ""
		f.RemoveRow(remove)
	}
	if len(f.Rows) > visible {
		r.DrawLabel(x, y, fmt.Sprintf("rows %d-%d of %d (scroll)", f.Scroll+1, end, len(f.Rows)))
	}
	y += th.LineHeight

	if gui.Button(rect(x, y, 100, th.RowHeight), "+ Row") {
		f.AddRow(visible)
	}
	y += th.RowHeight + th.LineHeight

	y = r.DrawSectionHeader(x, y, "Bulk paste")
	y = r.DrawLabel(x, y, "Clipboard lines: minor<TAB>value")
	f.BulkMajor = gui.ComboBox(rect(x, y, colMajor+40, th.RowHeight), options, f.BulkMajor)
	if f.BulkMajor == otherIndex() {
		p.textBox("bulk:custom", rect(x+colMajor+40+colGap, y, colCustom+40, th.RowHeight), &f.BulkCustom)
	}
	if gui.Button(rect(x+inner-110, y, 110, th.RowHeight), "Paste clipboard") {
		action = ActionPaste
	}
	y += th.RowHeight + th.LineHeight

	if gui.Button(rect(x, y, inner, th.RowHeight+8), "Visualize") {
		p.editing = ""
		action = ActionVisualize
	}
	y += th.RowHeight + 8 + th.LineHeight

	y = r.DrawLabel(x, y, "Tooltip")
	display := gui.ToggleGroup(rect(x, y, inner/2, th.RowHeight), "Amount + %;% only", int32(f.Display))
	if scene.DisplayMode(display) != f.Display {
		f.Display = scene.DisplayMode(display)
		action = ActionDisplayChanged
	}

	return action
}

// drawRow draws row i and reports whether its remove button was pressed.
func (p *InputPanel) drawRow(f *Form, i int, x, y int32, options string) bool {
	row := &f.Rows[i]
	h := p.renderer.Theme.RowHeight

	row.Major = gui.ComboBox(rect(x, y, colMajor, h), options, row.Major)
	x += colMajor + colGap
	if row.Major == otherIndex() {
		p.textBox(fmt.Sprintf("row:%d:custom", i), rect(x, y, colCustom, h), &row.Custom)
	}
	x += colCustom + colGap
	p.textBox(fmt.Sprintf("row:%d:minor", i), rect(x, y, colMinor, h), &row.Minor)
	x += colMinor + colGap
	p.textBox(fmt.Sprintf("row:%d:value", i), rect(x, y, colValue, h), &row.Value)
	x += colValue + colGap
	return gui.Button(rect(x, y, colRemove, h), "x")
}

// textBox draws a text box that takes focus on click and releases it on
// enter or a click elsewhere.
func (p *InputPanel) textBox(key string, bounds rl.Rectangle, text *string) {
	if gui.TextBox(bounds, text, textBoxSize, p.editing == key) {
		if p.editing == key {
			p.editing = ""
		} else {
			p.editing = key
		}
	}
}

func valueHeader(mode portfolio.Mode) string {
	if mode == portfolio.ModePercentage {
		return "Major      Custom     Minor        Percent (%)"
	}
	return "Major      Custom     Minor        Amount (JPY)"
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
