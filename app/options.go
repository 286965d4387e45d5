package app

import (
	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
)

// Options configures an App.
type Options struct {
	Seed     int64
	Headless bool

	// Holdings CSV loaded at startup; Major is the default category for
	// rows that leave the major column empty.
	InputPath string
	Major     string

	Mode    portfolio.Mode
	Display scene.DisplayMode

	OutputDir      string
	WriteParticles bool
	LogStats       bool
}
