package export

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/portfolio"
	"github.com/pthm-cable/orbit/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	b := scene.NewBuilder(config.Default(), rand.New(rand.NewSource(42)))
	etf := portfolio.Predefined(portfolio.KindETF)
	st, err := b.Visualize(scene.State{}, []portfolio.FormRow{
		{Major: etf, Minor: "A", Value: "60000"},
		{Major: etf, Minor: "B", Value: "40000"},
	}, portfolio.ModeAmount)
	if err != nil {
		t.Fatal(err)
	}
	return st.Scene
}

func readCSV[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return rows
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", true)
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Nil manager still summarizes
	records, err := om.WriteScene(testScene(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
	if om.Dir() != "" || om.Close() != nil || om.WriteConfig(config.Default()) != nil {
		t.Error("nil manager methods should be no-ops")
	}
}

func TestOutputManagerWritesScene(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := om.WriteScene(testScene(t)); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	spheres := readCSV[SphereRecord](t, filepath.Join(dir, "spheres.csv"))
	if len(spheres) != 2 {
		t.Fatalf("spheres.csv has %d rows, want 2", len(spheres))
	}
	if !spheres[0].IsSun || spheres[0].Particles != 50000 || spheres[0].Radius != 20 {
		t.Errorf("sun row = %+v", spheres[0])
	}
	if spheres[1].Name != "ETF" || spheres[1].Particles != 100 || spheres[1].TotalValue != 100000 {
		t.Errorf("ETF row = %+v", spheres[1])
	}

	children := readCSV[ChildRecord](t, filepath.Join(dir, "children.csv"))
	if len(children) != 2 {
		t.Fatalf("children.csv has %d rows, want 2", len(children))
	}
	if children[0].Minor != "A" || children[0].Particles != 60 || math.Abs(children[0].Percent-60) > 1e-9 {
		t.Errorf("child row = %+v", children[0])
	}
	if children[1].Particles != 40 {
		t.Errorf("last child particles = %d, want 40", children[1].Particles)
	}

	particles := readCSV[ParticleRecord](t, filepath.Join(dir, "particles.csv"))
	if len(particles) != 50100 {
		t.Errorf("particles.csv has %d rows, want 50100", len(particles))
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not reload: %v", err)
	}
}

func TestOutputManagerWithoutParticles(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()
	if _, err := os.Stat(filepath.Join(dir, "particles.csv")); !os.IsNotExist(err) {
		t.Error("particles.csv should not be created")
	}
}

func TestSphereRecordRadialStats(t *testing.T) {
	sun := testScene(t).Spheres()[0]
	if !sun.Meta.IsSun {
		t.Fatal("expected the sun first")
	}
	rec := NewSphereRecord(0, sun)
	// Uniform ball: mean 3/4, median 2^(-1/3)
	if math.Abs(rec.RadialMean-0.75) > 0.01 {
		t.Errorf("radial mean = %v, want ~0.75", rec.RadialMean)
	}
	if math.Abs(rec.RadialP50-math.Pow(2, -1.0/3)) > 0.01 {
		t.Errorf("radial median = %v, want ~0.794", rec.RadialP50)
	}
	if rec.RadialP90 > 1 {
		t.Errorf("radial p90 = %v exceeds the unit ball", rec.RadialP90)
	}
}

func TestComputeRadialStats(t *testing.T) {
	tests := []struct {
		name                string
		values              []float64
		mean, p10, p50, p90 float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{0.5}, 0.5, 0.5, 0.5, 0.5},
		// Empirical quantiles pick samples, no interpolation
		{"unsorted", []float64{7, 3, 10, 1, 5, 9, 2, 8, 6, 4}, 5.5, 1, 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.values)
			mean, p10, p50, p90 := ComputeRadialStats(in)
			got := []float64{mean, p10, p50, p90}
			want := []float64{tt.mean, tt.p10, tt.p50, tt.p90}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("stats = %v, want %v", got, want)
					break
				}
			}
			if !slices.Equal(in, tt.values) {
				t.Error("input slice was reordered")
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(0xff6347); got != "#ff6347" {
		t.Errorf("HexColor = %q", got)
	}
	if got := HexColor(0x0000ff); got != "#0000ff" {
		t.Errorf("HexColor = %q", got)
	}
}
