package buhlmann_test

import (
	"testing"

	"github.com/katalvlaran/decoplan/buhlmann"
)

// BenchmarkPlanDive measures the full pipeline on the 40 m / 35 min
// reference profile (59 minutes of per-minute stop polling).
func BenchmarkPlanDive(b *testing.B) {
	profile := buhlmann.Profile{
		MaxDepth:   40,
		BottomTime: 35,
		Gas:        buhlmann.Air,
		GFLow:      0.30,
		GFHigh:     0.85,
		Variant:    buhlmann.ModelC,
	}
	opts := buhlmann.DefaultOptions(buhlmann.WithBottomTimeIncludesDescent())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buhlmann.PlanDive(profile, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdvance measures one closed-form 16-compartment update.
func BenchmarkAdvance(b *testing.B) {
	c, err := buhlmann.CoefficientsFor(buhlmann.ModelC)
	if err != nil {
		b.Fatal(err)
	}
	ts := buhlmann.NewTissueState(buhlmann.DefaultSurfacePressure)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ts, err = buhlmann.Advance(ts, c, buhlmann.Air, 5.01325, 0, 1)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCeiling measures the mixed-gas ceiling evaluation.
func BenchmarkCeiling(b *testing.B) {
	c, err := buhlmann.CoefficientsFor(buhlmann.ModelC)
	if err != nil {
		b.Fatal(err)
	}
	ts, err := buhlmann.Advance(buhlmann.NewTissueState(buhlmann.DefaultSurfacePressure), c, buhlmann.Air, 5.01325, 0, 30)
	if err != nil {
		b.Fatal(err)
	}

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = c.Ceiling(ts, 0.85)
	}
	_ = sink
}
