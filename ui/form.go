package ui

import (
	"strings"

	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
)

// RowInput is one editable holding row. Major indexes MajorOptions; the
// last option switches the row to the Custom text.
type RowInput struct {
	Major  int32
	Custom string
	Minor  string
	Value  string
}

// Category resolves the row's major category.
func (r RowInput) Category() portfolio.Category {
	return portfolio.FromSelection(selectorLabel(r.Major), r.Custom)
}

// Form is the editable input of the side panel. It holds no raylib state
// so the edit logic can be exercised without a window.
type Form struct {
	Rows []RowInput

	BulkMajor  int32
	BulkCustom string

	Mode    portfolio.Mode
	Display scene.DisplayMode

	// First visible row when there are more rows than fit
	Scroll int
}

// NewForm creates a form with one empty row, as the page starts with.
func NewForm(mode portfolio.Mode, display scene.DisplayMode) *Form {
	return &Form{Rows: []RowInput{{}}, Mode: mode, Display: display}
}

// MajorOptions returns the selector entries: the predefined kinds, then
// the custom entry.
func MajorOptions() []string {
	kinds := portfolio.Kinds()
	out := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		out = append(out, k.Name())
	}
	return append(out, "Other")
}

// otherIndex is the selector index of the custom entry.
func otherIndex() int32 {
	return int32(len(portfolio.Kinds()))
}

// selectorLabel maps a selector index to the label category parsing expects.
func selectorLabel(i int32) string {
	kinds := portfolio.Kinds()
	if i >= 0 && int(i) < len(kinds) {
		return kinds[i].Label()
	}
	return portfolio.OtherLabel
}

// AddRow appends an empty row and scrolls it into view.
func (f *Form) AddRow(visible int) {
	f.Rows = append(f.Rows, RowInput{})
	f.ScrollTo(len(f.Rows)-1, visible)
}

// RemoveRow deletes row i.
func (f *Form) RemoveRow(i int) {
	if i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
	f.Scroll = min(f.Scroll, max(0, len(f.Rows)-1))
}

// ScrollTo adjusts Scroll so row i is among the visible rows.
func (f *Form) ScrollTo(i, visible int) {
	if visible <= 0 {
		return
	}
	if i < f.Scroll {
		f.Scroll = i
	}
	if i >= f.Scroll+visible {
		f.Scroll = i - visible + 1
	}
}

// ScrollBy moves the visible window by delta rows.
func (f *Form) ScrollBy(delta, visible int) {
	f.Scroll = max(0, min(f.Scroll+delta, len(f.Rows)-visible))
}

// Paste appends one row per valid line of text under the bulk category.
// It returns the number of rows added.
func (f *Form) Paste(text string) (int, error) {
	major, err := portfolio.BulkCategory(selectorLabel(f.BulkMajor), f.BulkCustom)
	if err != nil {
		return 0, err
	}
	rows, err := portfolio.ParseBulk(major, text)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		f.Rows = append(f.Rows, rowFromCategory(row))
	}
	return len(rows), nil
}

// Load replaces the rows, as when a holdings file is dropped on the window.
func (f *Form) Load(rows []portfolio.FormRow) {
	f.Rows = f.Rows[:0]
	for _, row := range rows {
		f.Rows = append(f.Rows, rowFromCategory(row))
	}
	f.Scroll = 0
}

func rowFromCategory(row portfolio.FormRow) RowInput {
	in := RowInput{Minor: row.Minor, Value: row.Value}
	if k, ok := row.Major.Kind(); ok {
		in.Major = int32(k)
	} else {
		in.Major = otherIndex()
		in.Custom = row.Major.String()
	}
	return in
}

// FormRows returns the rows for validation.
func (f *Form) FormRows() []portfolio.FormRow {
	out := make([]portfolio.FormRow, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = portfolio.FormRow{
			Major: r.Category(),
			Minor: strings.TrimSpace(r.Minor),
			Value: r.Value,
		}
	}
	return out
}
