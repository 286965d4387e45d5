package export

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ComputeRadialStats calculates mean and percentiles of particle distances.
// For a uniform ball the median sits at 2^(-1/3) ≈ 0.794.
func ComputeRadialStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	mean = stat.Mean(values, nil)

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	q := func(p float64) float64 { return stat.Quantile(p, stat.Empirical, sorted, nil) }
	return mean, q(0.10), q(0.50), q(0.90)
}

// LogValue implements slog.LogValuer for structured logging.
func (s SphereRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("index", s.Index),
		slog.String("name", s.Name),
		slog.Bool("is_sun", s.IsSun),
		slog.Float64("radius", s.Radius),
		slog.Int("particles", s.Particles),
		slog.Float64("total_value", s.TotalValue),
		slog.Float64("total_percent", s.TotalPercent),
		slog.Float64("radial_mean", s.RadialMean),
		slog.Float64("radial_p50", s.RadialP50),
	)
}

// LogStats logs the sphere summary using slog.
func (s SphereRecord) LogStats() {
	slog.Info("sphere", "stats", s)
}
