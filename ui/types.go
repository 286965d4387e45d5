// Package ui draws the viewer's input panel, tooltip, HUD and error
// modal on top of the 3D scene.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// PanelAnchor specifies where a floating panel is placed relative to a point.
type PanelAnchor int

const (
	AnchorBelowRight PanelAnchor = iota // Default: down and right of the pointer
	AnchorBelowLeft
	AnchorAboveRight
	AnchorAboveLeft
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	ErrorColor     rl.Color
	Padding        int32
	LineHeight     int32
	RowHeight      int32
	SwatchSize     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		ErrorColor:     rl.Color{R: 230, G: 90, B: 90, A: 255},
		Padding:        10,
		LineHeight:     16,
		RowHeight:      24,
		SwatchSize:     10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// ToColor converts a 0xRRGGBB value to an opaque raylib color.
func ToColor(hex uint32) rl.Color {
	return rl.Color{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
