// Package app runs the viewer: it owns the visualization state and wires
// the input panel, orbit camera and renderers into the raylib frame loop.
package app

import (
	"log/slog"
	"math/rand"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/camera"
	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/renderer"
	"github.com/pthm-cable/orbit/scene"
	"github.com/pthm-cable/orbit/ui"
)

// Pointer hit radius floor, so the smallest planets stay hoverable.
const minPickRadius = 1.0

// App holds the complete viewer state.
type App struct {
	cfg     *config.Config
	opts    Options
	builder *scene.Builder
	state   scene.State

	camera    *camera.Camera
	starfield *renderer.StarfieldRenderer
	clouds    *renderer.CloudRenderer

	form     *ui.Form
	panel    *ui.InputPanel
	tooltip  *ui.TooltipPanel
	modal    *ui.ErrorModal
	hud      *ui.HUD
	overlays *ui.Overlays

	perf *PerfStats

	screenWidth, screenHeight float32
}

// New creates the viewer. Must be called after the raylib window is created.
func New(cfg *config.Config, opts Options) *App {
	rng := rand.New(rand.NewSource(opts.Seed))
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())

	cam := camera.New(float64(w), float64(h), cfg.Camera.FovY, cfg.Camera.Distance)
	cam.MinDistance = cfg.Camera.MinDistance
	cam.MaxDistance = cfg.Camera.MaxDistance
	cam.Damping = cfg.Camera.Damping

	a := &App{
		cfg:          cfg,
		opts:         opts,
		builder:      scene.NewBuilder(cfg, rng),
		state:        scene.State{Mode: opts.Mode, DisplayMode: opts.Display},
		camera:       cam,
		starfield:    renderer.NewStarfieldRenderer(rng, cfg.Starfield.Count, cfg.Starfield.Spread, cfg.Starfield.Spin),
		clouds:       renderer.NewCloudRenderer(float32(cfg.Render.PointOpacity)),
		form:         ui.NewForm(opts.Mode, opts.Display),
		panel:        ui.NewInputPanel(int32(cfg.UI.PanelWidth), cfg.UI.MaxRows),
		tooltip:      ui.NewTooltipPanel(),
		modal:        ui.NewErrorModal(),
		hud:          ui.NewHUD(),
		overlays:     ui.NewOverlays(),
		perf:         NewPerfStats(),
		screenWidth:  w,
		screenHeight: h,
	}

	// The sun shows before any input, as on first page load
	a.state.Scene = a.builder.Build(nil, opts.Mode)

	if opts.InputPath != "" {
		a.loadFile(opts.InputPath)
	}
	return a
}

// Update processes input and advances animation by one frame.
func (a *App) Update() {
	start := time.Now()
	dt := float64(rl.GetFrameTime())

	a.handleInput()
	a.camera.Update()

	if a.overlays.IsEnabled(ui.OverlaySpin) {
		a.state.Scene.Spin(a.cfg.Render.SphereSpin, dt)
		a.starfield.Update(dt)
	}

	a.perf.Record(PhaseUpdate, time.Since(start))
}

// Draw renders one frame.
func (a *App) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(ui.ToColor(a.cfg.Render.Background))

	rl.BeginMode3D(renderer.Camera3D(a.camera))
	if a.overlays.IsEnabled(ui.OverlayStarfield) {
		a.starfield.Draw()
	}
	a.clouds.Draw(a.state.Scene.Spheres())
	if sp, ok := a.state.Hovered(); ok && a.overlays.IsEnabled(ui.OverlayHighlight) {
		a.clouds.DrawHighlight(sp)
	}
	rl.EndMode3D()

	a.drawUI()

	rl.EndDrawing()
	a.perf.Record(PhaseDraw, time.Since(start))
}

// drawUI draws the 2D layer and applies panel actions.
func (a *App) drawUI() {
	sw, sh := int32(a.screenWidth), int32(a.screenHeight)
	left := int32(10)

	if a.overlays.IsEnabled(ui.OverlayPanel) {
		left += a.panel.Width()
		if a.state.LastError != nil {
			// Modal owns input until dismissed
			gui.Lock()
			a.panel.Draw(a.form, sh)
			gui.Unlock()
		} else {
			a.handleAction(a.panel.Draw(a.form, sh))
		}
	}

	if a.overlays.IsEnabled(ui.OverlayStats) {
		data := ui.HUDData{
			Title:     "Asset Orbit",
			Mode:      a.state.Mode.String(),
			Spheres:   a.state.Scene.Len(),
			Particles: a.state.Scene.TotalParticles(),
			FPS:       rl.GetFPS(),
		}
		if d, ok := a.perf.Last(PhaseBuild); ok {
			data.BuildTime = d.Round(time.Millisecond).String()
		}
		a.hud.Draw(left, 10, data)
	}
	a.hud.DrawControls(left, sh, "Drag: orbit | Wheel: zoom | Home: reset view | Drop a CSV to load | F11: fullscreen", a.overlays)

	if tt, ok := a.state.Tooltip(); ok && a.state.LastError == nil {
		mouse := rl.GetMousePosition()
		a.tooltip.Draw(tt, int32(mouse.X), int32(mouse.Y), sw, sh)
	}

	if a.modal.Draw(a.state.LastError, sw, sh) {
		a.state = scene.DismissError(a.state)
	}
}

// handleAction applies what the panel asked for.
func (a *App) handleAction(action ui.Action) {
	switch action {
	case ui.ActionVisualize:
		a.visualize()
	case ui.ActionPaste:
		n, err := a.form.Paste(rl.GetClipboardText())
		if err != nil {
			a.fail("bulk paste failed", err)
			return
		}
		slog.Info("bulk paste", "rows", n)
	case ui.ActionDisplayChanged:
		a.state = scene.SetDisplayMode(a.state, a.form.Display)
	}
}

// visualize rebuilds the scene from the form.
func (a *App) visualize() {
	start := time.Now()
	next, err := a.builder.Visualize(a.state, a.form.FormRows(), a.form.Mode)
	if err != nil {
		a.fail("visualize failed", err)
		return
	}
	a.state = next
	a.perf.Record(PhaseBuild, time.Since(start))
}

// loadFile replaces the form with a holdings CSV and visualizes it.
func (a *App) loadFile(path string) {
	rows, err := LoadRows(path, a.opts.Major)
	if err != nil {
		a.fail("loading holdings failed", err)
		return
	}
	a.form.Load(rows)
	slog.Info("holdings loaded", "path", path, "rows", len(rows))
	a.visualize()
}

func (a *App) fail(msg string, err error) {
	slog.Warn(msg, "error", err)
	a.state = scene.Fail(a.state, err)
}

// Unload frees resources.
func (a *App) Unload() {
	a.starfield.Unload()
	a.clouds.Unload()
	for _, name := range a.perf.SortedNames() {
		s := a.perf.Summary(name)
		slog.Info("perf",
			"phase", name,
			"mean", s.Mean.Round(time.Microsecond),
			"p95", s.P95.Round(time.Microsecond),
			"max", s.Max.Round(time.Microsecond),
			"samples", s.Samples,
		)
	}
}
