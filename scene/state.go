package scene

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/portfolio"
)

// DisplayMode selects how tooltip lines are written.
type DisplayMode uint8

const (
	DisplayAmountPercent DisplayMode = iota // "label: ¥amount (p%)"
	DisplayPercent                          // "label: p%"
)

func (d DisplayMode) String() string {
	if d == DisplayPercent {
		return "percent"
	}
	return "amount_percent"
}

// ParseDisplayMode parses "amount_percent" or "percent".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "amount_percent", "":
		return DisplayAmountPercent, nil
	case "percent":
		return DisplayPercent, nil
	}
	return DisplayAmountPercent, fmt.Errorf("unknown display mode %q", s)
}

// State is everything a visualization run owns. Update functions take a
// State and return the next one; a failed update returns its input.
type State struct {
	Scene       *Scene
	Grouping    *portfolio.Grouping
	Mode        portfolio.Mode
	DisplayMode DisplayMode

	// LastError is the most recent failed update, shown until dismissed
	LastError error

	hovered    ecs.Entity
	hasHovered bool
}

// Visualize rebuilds the scene from form rows. Input is validated before
// anything is replaced, so on error the prior state comes back unchanged
// and the caller decides whether to record the error with Fail.
func (b *Builder) Visualize(s State, rows []portfolio.FormRow, mode portfolio.Mode) (State, error) {
	records, err := portfolio.Prepare(rows, mode, b.cfg.Percentage.Tolerance)
	if err != nil {
		return s, err
	}

	var grouping *portfolio.Grouping
	if len(records) > 0 {
		grouping = portfolio.Group(records, mode, portfolio.NewColorAssigner(b.cfg.Palette))
	}

	return State{
		Scene:       b.Build(grouping, mode),
		Grouping:    grouping,
		Mode:        mode,
		DisplayMode: s.DisplayMode,
	}, nil
}

// Hover updates the hovered sphere from a pointer ray.
func Hover(s State, origin, dir r3.Vec, minRadius float64) State {
	s.hasHovered = false
	if s.Scene == nil {
		return s
	}
	if sp, ok := s.Scene.Pick(origin, dir, minRadius); ok {
		s.hovered = sp.Entity
		s.hasHovered = true
	}
	return s
}

// ClearHover drops the hovered sphere, e.g. while the pointer is over the panel.
func ClearHover(s State) State {
	s.hasHovered = false
	return s
}

// SetDisplayMode switches the tooltip display mode.
func SetDisplayMode(s State, d DisplayMode) State {
	s.DisplayMode = d
	return s
}

// Fail records err for display.
func Fail(s State, err error) State {
	s.LastError = err
	return s
}

// DismissError clears LastError.
func DismissError(s State) State {
	s.LastError = nil
	return s
}

// Hovered returns the sphere under the pointer.
func (s State) Hovered() (Sphere, bool) {
	if !s.hasHovered {
		return Sphere{}, false
	}
	return s.Scene.Get(s.hovered)
}

// Tooltip returns the tooltip for the hovered sphere.
func (s State) Tooltip() (Tooltip, bool) {
	sp, ok := s.Hovered()
	if !ok {
		return Tooltip{}, false
	}
	return s.TooltipFor(sp), true
}

// TooltipFor formats any sphere of the state's scene.
func (s State) TooltipFor(sp Sphere) Tooltip {
	display := s.DisplayMode
	if s.Mode == portfolio.ModePercentage {
		// Amounts are the percentages themselves in this mode
		display = DisplayPercent
	}
	return NewTooltip(sp.Meta, display)
}
