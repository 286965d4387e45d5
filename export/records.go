// Package export writes a built scene to CSV and YAML files for headless
// runs: one row per sphere, per minor category and optionally per particle.
package export

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/scene"
)

// SphereRecord is one row of spheres.csv.
type SphereRecord struct {
	Index        int     `csv:"index"`
	Name         string  `csv:"name"`
	IsSun        bool    `csv:"is_sun"`
	CenterX      float64 `csv:"center_x"`
	CenterY      float64 `csv:"center_y"`
	CenterZ      float64 `csv:"center_z"`
	Radius       float64 `csv:"radius"`
	Particles    int     `csv:"particles"`
	TotalValue   float64 `csv:"total_value"`
	TotalPercent float64 `csv:"total_percent"`

	// Distance of particles from the center, in units of Radius
	RadialMean float64 `csv:"radial_mean"`
	RadialP10  float64 `csv:"radial_p10"`
	RadialP50  float64 `csv:"radial_p50"`
	RadialP90  float64 `csv:"radial_p90"`
}

// ChildRecord is one row of children.csv.
type ChildRecord struct {
	Sphere    int     `csv:"sphere"`
	Major     string  `csv:"major"`
	Minor     string  `csv:"minor"`
	Value     float64 `csv:"value"`
	Percent   float64 `csv:"percent"`
	Color     string  `csv:"color"`
	Particles int     `csv:"particles"`
}

// ParticleRecord is one row of particles.csv, in world space.
type ParticleRecord struct {
	Sphere int     `csv:"sphere"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	Color  string  `csv:"color"`
}

// NewSphereRecord summarizes sphere sp, the index-th of its scene.
func NewSphereRecord(index int, sp scene.Sphere) SphereRecord {
	rec := SphereRecord{
		Index:        index,
		Name:         sp.Meta.Major,
		IsSun:        sp.Meta.IsSun,
		CenterX:      sp.Transform.Center.X,
		CenterY:      sp.Transform.Center.Y,
		CenterZ:      sp.Transform.Center.Z,
		Radius:       sp.Transform.Radius,
		Particles:    sp.Body.Cloud.Len(),
		TotalValue:   sp.Meta.Value,
		TotalPercent: sp.Meta.TotalPercent,
	}
	if sp.Body.Cloud.Len() > 0 {
		radial := make([]float64, len(sp.Body.Cloud.Positions))
		for i, p := range sp.Body.Cloud.Positions {
			radial[i] = r3.Norm(p)
		}
		rec.RadialMean, rec.RadialP10, rec.RadialP50, rec.RadialP90 = ComputeRadialStats(radial)
	}
	return rec
}

// ChildRecords lists the minor categories of sphere sp.
func ChildRecords(index int, sp scene.Sphere) []ChildRecord {
	out := make([]ChildRecord, len(sp.Meta.Children))
	for i, c := range sp.Meta.Children {
		out[i] = ChildRecord{
			Sphere:    index,
			Major:     sp.Meta.Major,
			Minor:     c.Minor,
			Value:     c.Value,
			Percent:   c.Percent,
			Color:     HexColor(c.Color),
			Particles: c.Particles,
		}
	}
	return out
}

// ParticleRecords lists every particle of sphere sp in world coordinates.
func ParticleRecords(index int, sp scene.Sphere) []ParticleRecord {
	cloud := sp.Body.Cloud
	out := make([]ParticleRecord, cloud.Len())
	for i := range out {
		p := sp.Transform.WorldPoint(cloud.Positions[i])
		out[i] = ParticleRecord{
			Sphere: index,
			X:      p.X,
			Y:      p.Y,
			Z:      p.Z,
			Color:  HexColor(cloud.Colors[i].Hex()),
		}
	}
	return out
}

// HexColor formats 0xRRGGBB as "#rrggbb".
func HexColor(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}
