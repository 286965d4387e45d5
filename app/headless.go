package app

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/export"
	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
)

// LoadRows reads a holdings CSV. major is the category for rows whose
// major column is empty. An empty path yields no rows.
func LoadRows(path, major string) ([]portfolio.FormRow, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening holdings: %w", err)
	}
	defer f.Close()

	rows, err := portfolio.LoadCSV(f, portfolio.ParseCategoryName(major))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// RunHeadless builds one visualization from opts.InputPath and writes it
// to opts.OutputDir. No window is opened.
func RunHeadless(cfg *config.Config, opts Options) error {
	start := time.Now()

	rows, err := LoadRows(opts.InputPath, opts.Major)
	if err != nil {
		return err
	}

	builder := scene.NewBuilder(cfg, rand.New(rand.NewSource(opts.Seed)))
	st, err := builder.Visualize(scene.State{DisplayMode: opts.Display}, rows, opts.Mode)
	if err != nil {
		return fmt.Errorf("visualizing: %w", err)
	}

	om, err := export.NewOutputManager(opts.OutputDir, opts.WriteParticles)
	if err != nil {
		return err
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}
	records, err := om.WriteScene(st.Scene)
	if err != nil {
		return err
	}

	if opts.LogStats {
		logScene(st, records)
	}

	slog.Info("headless run complete",
		"rows", len(rows),
		"groups", st.Grouping.Len(),
		"spheres", st.Scene.Len(),
		"particles", st.Scene.TotalParticles(),
		"output_dir", om.Dir(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// logScene logs every sphere's summary and tooltip text.
func logScene(st scene.State, records []export.SphereRecord) {
	for i, sp := range st.Scene.Spheres() {
		records[i].LogStats()
		slog.Info("tooltip", "sphere", i, "text", st.TooltipFor(sp).String())
	}
}
