package scene

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/particles"
	"github.com/pthm-cable/orbit/portfolio"
)

// Builder turns groupings into scenes. It owns the RNG used for sampling
// and shuffling; everything else it computes is deterministic.
type Builder struct {
	cfg    *config.Config
	budget particles.Budgeter
	rng    *rand.Rand
}

// NewBuilder creates a builder for cfg.
func NewBuilder(cfg *config.Config, rng *rand.Rand) *Builder {
	return &Builder{
		cfg:    cfg,
		budget: particles.NewBudgeter(cfg),
		rng:    rng,
	}
}

// Build creates a fresh scene: the sun in amount mode, then one planet per
// group placed evenly on the orbit ring. A nil grouping yields the sun alone.
func (b *Builder) Build(g *portfolio.Grouping, mode portfolio.Mode) *Scene {
	start := time.Now()
	s := New()

	if mode == portfolio.ModeAmount {
		s.Add(b.Sun())
	}

	n := g.Len()
	for i := 0; i < n; i++ {
		s.Add(b.Planet(g.Groups[i], i, n, mode))
	}

	slog.Info("scene built",
		"mode", mode.String(),
		"spheres", s.Len(),
		"particles", s.TotalParticles(),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)
	return s
}

// Sun builds the fixed benchmark sphere at the origin.
func (b *Builder) Sun() (Transform, Body, Meta) {
	total := b.cfg.Sun.Particles
	palette := make([]particles.Color, len(b.cfg.Sun.Colors))
	for i, hex := range b.cfg.Sun.Colors {
		palette[i] = particles.FromHex(hex)
	}
	counts := particles.SplitEven(total, len(palette))

	return Transform{Radius: b.budget.Radius(b.cfg.Benchmark.Value)},
		Body{Cloud: particles.Build(b.rng, total, palette, counts)},
		Meta{
			IsSun: true,
			Major: b.cfg.Benchmark.Label,
			Name:  "Sun",
			Value: b.cfg.Benchmark.Value,
		}
}

// Planet builds the sphere for group ga, the index-th of n on the ring.
func (b *Builder) Planet(ga *portfolio.GroupedAsset, index, n int, mode portfolio.Mode) (Transform, Body, Meta) {
	radius, total := b.Size(ga, mode)

	percents := make([]float64, len(ga.Children))
	palette := make([]particles.Color, len(ga.Children))
	for i, c := range ga.Children {
		percents[i] = c.Percent
		palette[i] = particles.FromHex(c.Color)
	}
	counts := particles.Allocate(total, percents, ga.TotalPercent)

	children := make([]ChildInfo, len(ga.Children))
	for i, c := range ga.Children {
		children[i] = ChildInfo{
			Minor:     c.Minor,
			Value:     c.Value,
			Percent:   c.Percent,
			Color:     c.Color,
			Particles: counts[i],
		}
	}

	return Transform{Center: OrbitPosition(b.cfg.Orbit.Radius, index, n), Radius: radius},
		Body{Cloud: particles.Build(b.rng, total, palette, counts)},
		Meta{
			Major:        ga.Major.String(),
			Name:         ga.Major.DisplayName(),
			Value:        ga.TotalValue,
			TotalPercent: ga.TotalPercent,
			Children:     children,
		}
}

// Size returns a group's radius and particle total for the input mode.
func (b *Builder) Size(ga *portfolio.GroupedAsset, mode portfolio.Mode) (float64, int) {
	if mode == portfolio.ModePercentage {
		return b.budget.PercentRadius(ga.TotalPercent), b.budget.PercentParticles(ga.TotalPercent)
	}
	return b.budget.Radius(ga.TotalValue), b.budget.Particles(ga.TotalValue)
}

// OrbitPosition places the index-th of n planets on the XZ ring.
func OrbitPosition(orbitRadius float64, index, n int) r3.Vec {
	if n <= 0 {
		return r3.Vec{}
	}
	angle := float64(index) * 2 * math.Pi / float64(n)
	return r3.Vec{X: orbitRadius * math.Cos(angle), Z: orbitRadius * math.Sin(angle)}
}
