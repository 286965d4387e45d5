package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay is a viewer layer that can be switched on and off from the keyboard.
type Overlay int

const (
	OverlayStarfield Overlay = iota
	OverlayHighlight
	OverlaySpin
	OverlayStats
	OverlayPanel
	numOverlays
)

// OverlayInfo describes an overlay's legend entry and hotkey.
type OverlayInfo struct {
	Overlay  Overlay
	Name     string
	Key      int32
	KeyLabel string
}

var overlayInfo = [numOverlays]OverlayInfo{
	{OverlayStarfield, "Stars", rl.KeyF1, "F1"},
	{OverlayHighlight, "Hover outline", rl.KeyF2, "F2"},
	{OverlaySpin, "Spin", rl.KeyF3, "F3"},
	{OverlayStats, "Stats", rl.KeyF4, "F4"},
	{OverlayPanel, "Input panel", rl.KeyF5, "F5"},
}

// Overlays tracks which overlays are on. Everything starts enabled.
type Overlays struct {
	on [numOverlays]bool
}

// NewOverlays returns a set with every overlay enabled.
func NewOverlays() *Overlays {
	o := &Overlays{}
	for i := range o.on {
		o.on[i] = true
	}
	return o
}

// Toggle flips an overlay and returns its new state.
func (o *Overlays) Toggle(ov Overlay) bool {
	if ov < 0 || ov >= numOverlays {
		return false
	}
	o.on[ov] = !o.on[ov]
	return o.on[ov]
}

// IsEnabled reports whether ov is on.
func (o *Overlays) IsEnabled(ov Overlay) bool {
	return ov >= 0 && ov < numOverlays && o.on[ov]
}

// Legend lists every overlay in hotkey order.
func (o *Overlays) Legend() []OverlayInfo {
	return overlayInfo[:]
}

// HandleKey toggles the overlay bound to key, if any.
func (o *Overlays) HandleKey(key int32) (Overlay, bool) {
	for _, info := range overlayInfo {
		if info.Key == key {
			o.Toggle(info.Overlay)
			return info.Overlay, true
		}
	}
	return 0, false
}
