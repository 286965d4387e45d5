package particles

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/orbit/config"
)

func countColor(c *Cloud, col Color) int {
	n := 0
	for _, cc := range c.Colors {
		if cc == col {
			n++
		}
	}
	return n
}

func testBudgeter() Budgeter {
	return NewBudgeter(config.Default())
}

func TestBudgeterBenchmark(t *testing.T) {
	b := testBudgeter()

	if r := b.Radius(100_000_000); r != 20 {
		t.Errorf("Radius(1e8) = %v, want 20", r)
	}
	// Asset groups get 10 particles per 10,000; the sun's fixed 50,000 is
	// half that density.
	if n := b.Particles(100_000_000); n != 100_000 {
		t.Errorf("Particles(1e8) = %d, want 100000", n)
	}
}

func TestBudgeterScaling(t *testing.T) {
	b := testBudgeter()

	tests := []struct {
		value      float64
		wantRadius float64
		wantCount  int
	}{
		{10_000, 0.002, 10},
		{100_000, 0.02, 100},
		{50_000_000, 10, 50_000},
		{15_000, 0.003, 15},
		{14_999, 0.0029998, 15},
		{14_000, 0.0028, 14},
		{200_000_000, 40, 200_000},
	}

	for _, tt := range tests {
		if got := b.Radius(tt.value); math.Abs(got-tt.wantRadius) > 1e-9 {
			t.Errorf("Radius(%v) = %v, want %v", tt.value, got, tt.wantRadius)
		}
		if got := b.Particles(tt.value); got != tt.wantCount {
			t.Errorf("Particles(%v) = %d, want %d", tt.value, got, tt.wantCount)
		}
	}
}

func TestBudgeterPercentMode(t *testing.T) {
	b := testBudgeter()

	if r := b.PercentRadius(50); r != 5 {
		t.Errorf("PercentRadius(50) = %v, want 5", r)
	}
	if n := b.PercentParticles(10); n != 5000 {
		t.Errorf("PercentParticles(10) = %d, want 5000", n)
	}
	if n := b.PercentParticles(0.1); n != 200 {
		t.Errorf("PercentParticles(0.1) = %d, want floor 200", n)
	}
}

func TestAllocateSumsExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		k := 1 + rng.Intn(8)
		percents := make([]float64, k)
		var group float64
		for i := range percents {
			percents[i] = rng.Float64()*30 + 1
			group += percents[i]
		}
		total := 1000 + rng.Intn(20000)

		counts := Allocate(total, percents, group)
		if len(counts) != k {
			t.Fatalf("got %d counts, want %d", len(counts), k)
		}
		sum := 0
		for _, n := range counts {
			if n < 0 {
				t.Fatalf("negative count in %v", counts)
			}
			sum += n
		}
		if sum != total {
			t.Fatalf("trial %d: counts %v sum to %d, want %d", trial, counts, sum, total)
		}
	}
}

func TestAllocateProportional(t *testing.T) {
	counts := Allocate(100, []float64{60, 40}, 100)
	if counts[0] != 60 || counts[1] != 40 {
		t.Errorf("counts = %v, want [60 40]", counts)
	}

	// Remainder goes to the last child
	counts = Allocate(10, []float64{1, 1, 1}, 3)
	if counts[0] != 3 || counts[1] != 3 || counts[2] != 4 {
		t.Errorf("counts = %v, want [3 3 4]", counts)
	}
}

func TestAllocateClampsOvershoot(t *testing.T) {
	// Both halves round up to 1, overshooting a total of 1
	counts := Allocate(1, []float64{0.5, 0.5, 0}, 1)
	if counts[2] != 0 {
		t.Errorf("last count = %d, want clamped 0", counts[2])
	}
	for _, n := range counts {
		if n < 0 {
			t.Errorf("negative count in %v", counts)
		}
	}
}

func TestAllocateZeroGroupPercent(t *testing.T) {
	counts := Allocate(5, []float64{0, 0}, 0)
	if counts[0] != 0 || counts[1] != 5 {
		t.Errorf("counts = %v, want [0 5]", counts)
	}
	if Allocate(5, nil, 10) != nil {
		t.Error("no children should allocate nothing")
	}
}

func TestSplitEven(t *testing.T) {
	counts := SplitEven(50_000, 3)
	if counts[0] != 16_666 || counts[1] != 16_666 || counts[2] != 16_668 {
		t.Errorf("SplitEven(50000, 3) = %v", counts)
	}
	if SplitEven(10, 0) != nil {
		t.Error("zero colors should split to nil")
	}
}

func TestSampleInsideUnitBall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 17, 5000} {
		count := 0
		for p := range Sample(rng, n) {
			if r3.Norm2(p) > 1 {
				t.Fatalf("point %v outside unit ball", p)
			}
			count++
		}
		if count != n {
			t.Errorf("Sample(%d) yielded %d points", n, count)
		}
	}
}

func TestSampleStopsEarly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	count := 0
	for range Sample(rng, 100) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestSampleUniformInVolume(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 20000

	xs := make([]float64, 0, n)
	cubes := make([]float64, 0, n)
	for p := range Sample(rng, n) {
		xs = append(xs, p.X)
		r := r3.Norm(p)
		cubes = append(cubes, r*r*r)
	}

	// Uniform in the ball means r^3 is uniform on [0, 1]
	if m := stat.Mean(cubes, nil); math.Abs(m-0.5) > 0.02 {
		t.Errorf("mean r^3 = %v, want ~0.5", m)
	}
	if m := stat.Mean(xs, nil); math.Abs(m) > 0.02 {
		t.Errorf("mean x = %v, want ~0", m)
	}
	// Var(x) for a uniform unit ball is 1/5
	if v := stat.Variance(xs, nil); math.Abs(v-0.2) > 0.02 {
		t.Errorf("var x = %v, want ~0.2", v)
	}
}

func TestShufflePreservesColors(t *testing.T) {
	red, blue := FromHex(0xff0000), FromHex(0x0000ff)
	colors := Repeat([]Color{red, blue}, []int{30, 70})

	Shuffle(rand.New(rand.NewSource(3)), colors)

	var nRed, nBlue int
	for _, c := range colors {
		switch c {
		case red:
			nRed++
		case blue:
			nBlue++
		}
	}
	if nRed != 30 || nBlue != 70 {
		t.Errorf("after shuffle red=%d blue=%d, want 30/70", nRed, nBlue)
	}

	// First 30 entries should no longer all be red
	allRed := true
	for _, c := range colors[:30] {
		if c != red {
			allRed = false
			break
		}
	}
	if allRed {
		t.Error("shuffle left the generation order intact")
	}
}

func TestBuildCloud(t *testing.T) {
	palette := []Color{FromHex(0xff6347), FromHex(0x4682b4)}

	t.Run("exact", func(t *testing.T) {
		c := Build(rand.New(rand.NewSource(1)), 100, palette, []int{60, 40})
		if c.Len() != 100 || len(c.Colors) != 100 {
			t.Fatalf("len positions=%d colors=%d, want 100", c.Len(), len(c.Colors))
		}
		if countColor(c, palette[0]) != 60 || countColor(c, palette[1]) != 40 {
			t.Errorf("color counts %d/%d, want 60/40", countColor(c, palette[0]), countColor(c, palette[1]))
		}
	})

	t.Run("short pads white", func(t *testing.T) {
		c := Build(rand.New(rand.NewSource(1)), 10, palette, []int{3, 3})
		if c.Len() != 10 || countColor(c, White) != 4 {
			t.Errorf("len=%d white=%d, want 10/4", c.Len(), countColor(c, White))
		}
	})

	t.Run("long is cut", func(t *testing.T) {
		c := Build(rand.New(rand.NewSource(1)), 1, palette, []int{1, 1})
		if c.Len() != 1 || len(c.Colors) != 1 {
			t.Errorf("len=%d colors=%d, want 1", c.Len(), len(c.Colors))
		}
	})
}

func TestBuildSeedsDiffer(t *testing.T) {
	palette := []Color{FromHex(0xff6347)}
	a := Build(rand.New(rand.NewSource(1)), 50, palette, []int{50})
	b := Build(rand.New(rand.NewSource(2)), 50, palette, []int{50})

	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	same := true
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical positions")
	}
}

func TestFlat(t *testing.T) {
	c := Build(rand.New(rand.NewSource(9)), 25, []Color{FromHex(0x00ff00)}, []int{25})
	pos, col := c.Flat(2)

	if len(pos) != 75 || len(col) != 75 {
		t.Fatalf("flat lengths = %d/%d, want 75/75", len(pos), len(col))
	}
	for i := 0; i < len(pos); i += 3 {
		x, y, z := float64(pos[i]), float64(pos[i+1]), float64(pos[i+2])
		if x*x+y*y+z*z > 4+1e-4 {
			t.Fatalf("scaled point %d outside radius 2", i/3)
		}
		if col[i+1] != 1 {
			t.Fatalf("color %d = %v, want green", i/3, col[i:i+3])
		}
	}
}

func TestColorHexRoundtrip(t *testing.T) {
	for _, hex := range []uint32{0xff6347, 0x000000, 0xffffff, 0x1e90ff} {
		if got := FromHex(hex).Hex(); got != hex {
			t.Errorf("FromHex(%#x).Hex() = %#x", hex, got)
		}
	}
}

func TestScatterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := Scatter(rng, 5000, 2000)
	if len(points) != 5000 {
		t.Fatalf("got %d points, want 5000", len(points))
	}
	for _, p := range points {
		if math.Abs(p.X) > 1000 || math.Abs(p.Y) > 1000 || math.Abs(p.Z) > 1000 {
			t.Fatalf("point %v outside the cube", p)
		}
	}
}
