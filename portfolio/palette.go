package portfolio

// DefaultPalette is the 12-color cycle for minor-category labels.
var DefaultPalette = []uint32{
	0xff6347, 0x4682b4, 0x32cd32, 0xdaa520, 0x6a5acd, 0xff69b4,
	0x00ced1, 0xf08080, 0x9370db, 0x7cfc00, 0x1e90ff, 0xffd700,
}

// ColorAssigner hands out palette colors to labels in first-seen order.
// A label keeps its color for the assigner's lifetime; once the palette is
// exhausted colors repeat.
type ColorAssigner struct {
	palette  []uint32
	assigned map[string]uint32
	next     int
}

// NewColorAssigner creates an assigner over palette, or DefaultPalette if empty.
func NewColorAssigner(palette []uint32) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorAssigner{
		palette:  palette,
		assigned: make(map[string]uint32),
	}
}

// Color returns the color for label, assigning the next palette entry on
// first sight.
func (a *ColorAssigner) Color(label string) uint32 {
	if c, ok := a.assigned[label]; ok {
		return c
	}
	c := a.palette[a.next%len(a.palette)]
	a.next++
	a.assigned[label] = c
	return c
}
