// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Benchmark  BenchmarkConfig  `yaml:"benchmark"`
	Budget     BudgetConfig     `yaml:"budget"`
	Percentage PercentageConfig `yaml:"percentage"`
	Palette    []uint32         `yaml:"palette"`
	Sun        SunConfig        `yaml:"sun"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	Camera     CameraConfig     `yaml:"camera"`
	Starfield  StarfieldConfig  `yaml:"starfield"`
	Render     RenderConfig     `yaml:"render"`
	UI         UIConfig         `yaml:"ui"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BenchmarkConfig describes the reference value the sun stands for.
// A group worth exactly Value renders at BaseRadius, the same size as the sun.
type BenchmarkConfig struct {
	Value      float64 `yaml:"value"`       // Currency units (1億円)
	BaseRadius float64 `yaml:"base_radius"` // Sun radius in world units
	Label      string  `yaml:"label"`       // Tooltip header for the sun
}

// BudgetConfig holds the amount-mode particle ratio.
type BudgetConfig struct {
	UnitValue        float64 `yaml:"unit_value"`         // Currency per unit (1万円)
	ParticlesPerUnit float64 `yaml:"particles_per_unit"` // Particles per unit
}

// PercentageConfig holds sizing used when inputs are percentages.
type PercentageConfig struct {
	BaseRadius        float64 `yaml:"base_radius"`         // Radius of a 100% group
	ParticlesPerPoint float64 `yaml:"particles_per_point"` // Particles per percentage point
	MinParticles      int     `yaml:"min_particles"`       // Floor for small groups
	Tolerance         float64 `yaml:"tolerance"`           // Allowed distance of the total from 100
}

// SunConfig holds the fixed sun cloud.
type SunConfig struct {
	Particles int      `yaml:"particles"`
	Colors    []uint32 `yaml:"colors"` // Split evenly; the last color absorbs the remainder
}

// OrbitConfig holds planet placement.
type OrbitConfig struct {
	Radius float64 `yaml:"radius"`
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	FovY        float64 `yaml:"fov_y"` // Degrees
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Damping     float64 `yaml:"damping"`
	RotateSpeed float64 `yaml:"rotate_speed"` // Radians per screen pixel
	ZoomStep    float64 `yaml:"zoom_step"`    // Distance factor per wheel notch
}

// StarfieldConfig holds background star parameters.
type StarfieldConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // Edge length of the cube stars are scattered in
	Spin   float64 `yaml:"spin"`   // Radians per second around Y
}

// RenderConfig holds point cloud drawing parameters.
type RenderConfig struct {
	PointOpacity float64 `yaml:"point_opacity"`
	SphereSpin   float64 `yaml:"sphere_spin"` // Radians per second around Y
	Background   uint32  `yaml:"background"`
}

// UIConfig holds input panel settings.
type UIConfig struct {
	PanelWidth  int    `yaml:"panel_width"`
	MaxRows     int    `yaml:"max_rows"`
	DisplayMode string `yaml:"display_mode"` // amount_percent or percent
	InputMode   string `yaml:"input_mode"`   // amount or percentage
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	SunRadius   float64 // Radius the budgeter assigns to Benchmark.Value
	UnitDensity float64 // Particles per currency unit
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects values the budgeter cannot work with.
func (c *Config) Validate() error {
	if c.Benchmark.Value <= 0 {
		return fmt.Errorf("benchmark.value must be positive, got %v", c.Benchmark.Value)
	}
	if c.Budget.UnitValue <= 0 {
		return fmt.Errorf("budget.unit_value must be positive, got %v", c.Budget.UnitValue)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	if len(c.Sun.Colors) == 0 {
		return fmt.Errorf("sun.colors must not be empty")
	}
	if c.Sun.Particles < 0 {
		return fmt.Errorf("sun.particles must not be negative, got %d", c.Sun.Particles)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.SunRadius = c.Benchmark.BaseRadius
	c.Derived.UnitDensity = c.Budget.ParticlesPerUnit / c.Budget.UnitValue
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
