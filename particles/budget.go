package particles

import (
	"math"

	"github.com/pthm-cable/orbit/config"
)

// Budgeter maps aggregate values to sphere sizes and particle counts.
type Budgeter struct {
	BaseRadius       float64 // Radius of a group worth BenchmarkValue
	BenchmarkValue   float64
	UnitValue        float64 // Currency per particle unit
	ParticlesPerUnit float64

	PercentBaseRadius  float64 // Radius of a 100% group
	PercentPerPoint    float64 // Particles per percentage point
	PercentMinParticle int
}

// NewBudgeter creates a budgeter from the loaded configuration.
func NewBudgeter(cfg *config.Config) Budgeter {
	return Budgeter{
		BaseRadius:         cfg.Benchmark.BaseRadius,
		BenchmarkValue:     cfg.Benchmark.Value,
		UnitValue:          cfg.Budget.UnitValue,
		ParticlesPerUnit:   cfg.Budget.ParticlesPerUnit,
		PercentBaseRadius:  cfg.Percentage.BaseRadius,
		PercentPerPoint:    cfg.Percentage.ParticlesPerPoint,
		PercentMinParticle: cfg.Percentage.MinParticles,
	}
}

// Radius is linear in value: a group worth the benchmark is as large as the sun.
func (b Budgeter) Radius(value float64) float64 {
	return b.BaseRadius * (value / b.BenchmarkValue)
}

// Particles returns round(value / UnitValue * ParticlesPerUnit).
func (b Budgeter) Particles(value float64) int {
	return int(math.Round(value / b.UnitValue * b.ParticlesPerUnit))
}

// PercentRadius sizes a group in percentage mode.
func (b Budgeter) PercentRadius(percent float64) float64 {
	return b.PercentBaseRadius * (percent / 100)
}

// PercentParticles counts particles in percentage mode, with a floor so
// small shares stay visible.
func (b Budgeter) PercentParticles(percent float64) int {
	n := int(math.Round(percent * b.PercentPerPoint))
	if n < b.PercentMinParticle {
		return b.PercentMinParticle
	}
	return n
}

// Allocate distributes total particles across children in proportion to
// their share of groupPercent. Every child but the last gets
// round(share * total); the last takes what remains, clamped at zero.
// Without clamping the counts always sum to total; when earlier roundings
// overshoot, the clamp keeps every count non-negative and the sum may
// exceed total by the overshoot.
func Allocate(total int, percents []float64, groupPercent float64) []int {
	if len(percents) == 0 {
		return nil
	}
	if groupPercent <= 0 {
		groupPercent = 1
	}

	counts := make([]int, len(percents))
	assigned := 0
	last := len(percents) - 1
	for i, p := range percents[:last] {
		n := int(math.Round(p / groupPercent * float64(total)))
		counts[i] = n
		assigned += n
	}
	counts[last] = max(0, total-assigned)
	return counts
}

// SplitEven splits n particles over k colors: each of the first k-1 gets
// floor(n/k) and the last absorbs the remainder.
func SplitEven(n, k int) []int {
	if k <= 0 {
		return nil
	}
	counts := make([]int, k)
	share := n / k
	for i := 0; i < k-1; i++ {
		counts[i] = share
	}
	counts[k-1] = n - share*(k-1)
	return counts
}
