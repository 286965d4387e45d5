package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/app"
	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
	"github.com/pthm-cable/orbit/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Build once from -input and write CSVs without a window")
	inputPath := flag.String("input", "", "Holdings CSV (major,minor,value) to load at startup")
	major := flag.String("major", "Cash", "Major category for rows with an empty major column (Japanese label or exact name such as Cash)")
	mode := flag.String("mode", "", "Input mode: amount or percentage (empty = use config)")
	display := flag.String("display", "", "Tooltip display: amount_percent or percent (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV exports and config snapshot")
	withParticles := flag.Bool("particles", false, "Also export every particle position")
	logStats := flag.Bool("log-stats", false, "Output per-sphere stats via slog")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if *mode == "" {
		*mode = cfg.UI.InputMode
	}
	inputMode, err := portfolio.ParseMode(*mode)
	if err != nil {
		slog.Error("invalid -mode", "error", err)
		os.Exit(1)
	}
	if *display == "" {
		*display = cfg.UI.DisplayMode
	}
	displayMode, err := scene.ParseDisplayMode(*display)
	if err != nil {
		slog.Error("invalid -display", "error", err)
		os.Exit(1)
	}

	opts := app.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		InputPath:      *inputPath,
		Major:          *major,
		Mode:           inputMode,
		Display:        displayMode,
		OutputDir:      *outputDir,
		WriteParticles: *withParticles,
		LogStats:       *logStats,
	}

	if *headless {
		// No raylib needed
		slog.Info("starting headless run", "seed", rngSeed, "input", *inputPath, "mode", inputMode.String())
		if err := app.RunHeadless(cfg, opts); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Asset Orbit")
	defer rl.CloseWindow()

	// Escape dismisses dialogs; only the window's close button quits
	rl.SetExitKey(ui.ExitKey)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a := app.New(cfg, opts)
	defer a.Unload()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}
