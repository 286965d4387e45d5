package app

import (
	"cmp"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names recorded by the app.
const (
	PhaseUpdate = "update"
	PhaseDraw   = "draw"
	PhaseBuild  = "build"
)

// About two seconds of frames at 60fps.
const perfWindow = 120

// ring keeps the most recent perfWindow samples of one phase.
type ring struct {
	buf  [perfWindow]float64 // Seconds
	next int
	n    int
}

func (r *ring) push(d time.Duration) {
	r.buf[r.next] = d.Seconds()
	r.next = (r.next + 1) % perfWindow
	r.n = min(r.n+1, perfWindow)
}

func (r *ring) values() []float64 {
	if r.n < perfWindow {
		return r.buf[:r.n]
	}
	return r.buf[:]
}

// PhaseSummary describes a phase's recent timings.
type PhaseSummary struct {
	Mean, P95, Max time.Duration
	Samples        int
}

// PerfStats tracks recent timings per phase.
type PerfStats struct {
	phases map[string]*ring
	last   map[string]time.Duration
}

// NewPerfStats creates an empty tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		phases: make(map[string]*ring),
		last:   make(map[string]time.Duration),
	}
}

// Record adds a sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	r, ok := p.phases[name]
	if !ok {
		r = &ring{}
		p.phases[name] = r
	}
	r.push(d)
	p.last[name] = d
}

// Last returns the most recent sample for the named phase.
func (p *PerfStats) Last(name string) (time.Duration, bool) {
	d, ok := p.last[name]
	return d, ok
}

// Summary computes mean, 95th percentile and max over the window.
func (p *PerfStats) Summary(name string) PhaseSummary {
	r, ok := p.phases[name]
	if !ok || r.n == 0 {
		return PhaseSummary{}
	}
	sorted := slices.Clone(r.values())
	slices.Sort(sorted)
	return PhaseSummary{
		Mean:    seconds(stat.Mean(sorted, nil)),
		P95:     seconds(stat.Quantile(0.95, stat.Empirical, sorted, nil)),
		Max:     seconds(sorted[len(sorted)-1]),
		Samples: len(sorted),
	}
}

// SortedNames returns phase names, slowest mean first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.phases))
	means := make(map[string]time.Duration, len(p.phases))
	for name := range p.phases {
		names = append(names, name)
		means[name] = p.Summary(name).Mean
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Compare(means[b], means[a])
	})
	return names
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
