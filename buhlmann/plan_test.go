package buhlmann_test

import (
	"testing"

	"github.com/katalvlaran/decoplan/buhlmann"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceOptions is the profile used throughout: 20 m/min down,
// 10 m/min up, 3 m grid, standard atmosphere, descent-inclusive timing.
func referenceOptions() buhlmann.Options {
	return buhlmann.DefaultOptions(buhlmann.WithBottomTimeIncludesDescent())
}

// TestPlanDive_ReferenceScenario is the byte-exact regression anchor:
// 40 m for 35 min on air, GF 30/85, ZH-L16C.
func TestPlanDive_ReferenceScenario(t *testing.T) {
	plan, err := buhlmann.PlanDive(validProfile(), referenceOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 21, Minutes: 1},
		{Depth: 18, Minutes: 1},
		{Depth: 15, Minutes: 2},
		{Depth: 12, Minutes: 5},
		{Depth: 9, Minutes: 7},
		{Depth: 6, Minutes: 15},
		{Depth: 3, Minutes: 28},
	}
	assert.Equal(t, want, plan.Stops, "stop schedule must match the reference run exactly")
	assert.Equal(t, 59, plan.TotalDecompressionMinutes(), "total decompression minutes")
	assert.InDelta(t, 98.0, plan.RuntimeMinutes, 1e-6, "descent+bottom+stops+ascents")
	assert.Equal(t, buhlmann.ModelC, plan.Variant)
	assert.Equal(t, 35.0, plan.BottomTime, "plan echoes the requested bottom time")
}

// TestPlanDive_VariantB re-runs the reference profile on the ZH-L16B
// tables, which tolerate more supersaturation in the mid compartments.
func TestPlanDive_VariantB(t *testing.T) {
	p := validProfile()
	p.Variant = buhlmann.ModelB

	plan, err := buhlmann.PlanDive(p, referenceOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 21, Minutes: 1},
		{Depth: 18, Minutes: 1},
		{Depth: 15, Minutes: 2},
		{Depth: 12, Minutes: 5},
		{Depth: 9, Minutes: 6},
		{Depth: 6, Minutes: 12},
		{Depth: 3, Minutes: 24},
	}
	assert.Equal(t, want, plan.Stops)
	assert.Equal(t, 51, plan.TotalDecompressionMinutes(), "B must decompress faster than C's 59")
}

// TestPlanDive_Trimix covers the helium channel end to end on a 45 m
// dive breathing 21/35.
func TestPlanDive_Trimix(t *testing.T) {
	p := buhlmann.Profile{
		MaxDepth:   45,
		BottomTime: 25,
		Gas:        buhlmann.GasMix{O2: 0.21, He: 0.35},
		GFLow:      0.30,
		GFHigh:     0.85,
		Variant:    buhlmann.ModelC,
	}

	plan, err := buhlmann.PlanDive(p, referenceOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 24, Minutes: 1},
		{Depth: 21, Minutes: 1},
		{Depth: 18, Minutes: 1},
		{Depth: 15, Minutes: 1},
		{Depth: 12, Minutes: 3},
		{Depth: 9, Minutes: 6},
		{Depth: 6, Minutes: 12},
		{Depth: 3, Minutes: 25},
	}
	assert.Equal(t, want, plan.Stops)
	assert.Equal(t, 50, plan.TotalDecompressionMinutes())
}

// TestPlanDive_BottomTimeConvention: excluding the descent from the
// bottom time lengthens the exposure and therefore the schedule.
func TestPlanDive_BottomTimeConvention(t *testing.T) {
	plan, err := buhlmann.PlanDive(validProfile(), buhlmann.DefaultOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 21, Minutes: 1},
		{Depth: 18, Minutes: 1},
		{Depth: 15, Minutes: 3},
		{Depth: 12, Minutes: 5},
		{Depth: 9, Minutes: 8},
		{Depth: 6, Minutes: 16},
		{Depth: 3, Minutes: 30},
	}
	assert.Equal(t, want, plan.Stops)
	assert.Equal(t, 64, plan.TotalDecompressionMinutes(), "35 full minutes at depth outweigh 33")
}

// TestPlanDive_NoStopsRequired: a shallow short dive surfaces directly;
// the empty stop list is a valid outcome, not an error.
func TestPlanDive_NoStopsRequired(t *testing.T) {
	p := validProfile()
	p.MaxDepth = 12
	p.BottomTime = 10

	plan, err := buhlmann.PlanDive(p, referenceOptions())
	require.NoError(t, err)

	assert.Empty(t, plan.Stops, "12 m for 10 min is a no-stop dive")
	assert.Zero(t, plan.TotalDecompressionMinutes())
}

// TestPlanDive_ShallowSchedule anchors a light-deco profile.
func TestPlanDive_ShallowSchedule(t *testing.T) {
	p := validProfile()
	p.MaxDepth = 30
	p.BottomTime = 25

	plan, err := buhlmann.PlanDive(p, referenceOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 12, Minutes: 1},
		{Depth: 9, Minutes: 1},
		{Depth: 6, Minutes: 2},
		{Depth: 3, Minutes: 5},
	}
	assert.Equal(t, want, plan.Stops)
}

// TestPlanDive_MonotoneInBottomTime: more time at depth never shortens
// the schedule.
func TestPlanDive_MonotoneInBottomTime(t *testing.T) {
	prev := -1
	for _, bt := range []float64{30, 35, 40} {
		p := validProfile()
		p.BottomTime = bt

		plan, err := buhlmann.PlanDive(p, referenceOptions())
		require.NoError(t, err)

		total := plan.TotalDecompressionMinutes()
		assert.GreaterOrEqual(t, total, prev, "total deco must not shrink at bottom time %v", bt)
		prev = total
	}
}

// TestPlanDive_MonotoneInGFLow: raising gf_low (a deeper, earlier-relaxed
// ramp) never lengthens the schedule.
func TestPlanDive_MonotoneInGFLow(t *testing.T) {
	prev := int(^uint(0) >> 1)
	for _, gfLow := range []float64{0.2, 0.3, 0.4, 0.5} {
		p := validProfile()
		p.GFLow = gfLow

		plan, err := buhlmann.PlanDive(p, referenceOptions())
		require.NoError(t, err)

		total := plan.TotalDecompressionMinutes()
		assert.LessOrEqual(t, total, prev, "total deco must not grow at gf_low %v", gfLow)
		prev = total
	}
}

// TestPlanDive_FlatGradientFactors: gf_low == gf_high degenerates to the
// classic single-factor Bühlmann schedule.
func TestPlanDive_FlatGradientFactors(t *testing.T) {
	p := validProfile()
	p.GFLow, p.GFHigh = 0.85, 0.85

	plan, err := buhlmann.PlanDive(p, referenceOptions())
	require.NoError(t, err)

	want := []buhlmann.Stop{
		{Depth: 12, Minutes: 1},
		{Depth: 9, Minutes: 7},
		{Depth: 6, Minutes: 13},
		{Depth: 3, Minutes: 30},
	}
	assert.Equal(t, want, plan.Stops, "flat 85/85 starts shallower and ends heavier")
}

// TestPlanDive_StopBoundExceeded: a bound tighter than the schedule's
// longest stop must fail with ErrStopLimitExceeded, never truncate.
func TestPlanDive_StopBoundExceeded(t *testing.T) {
	o := referenceOptions()
	o.MaxStopMinutes = 4 // the 12 m stop alone needs 5

	_, err := buhlmann.PlanDive(validProfile(), o)
	assert.ErrorIs(t, err, buhlmann.ErrStopLimitExceeded)
}

// TestPlanDive_RuntimeBoundExceeded: a total-runtime bound below the
// bottom phase fails immediately after simulation reaches it.
func TestPlanDive_RuntimeBoundExceeded(t *testing.T) {
	o := referenceOptions()
	o.MaxRuntimeMinutes = 30 // the dive spends 35 minutes before any stop

	_, err := buhlmann.PlanDive(validProfile(), o)
	assert.ErrorIs(t, err, buhlmann.ErrRuntimeLimitExceeded)
}

// TestPlanDive_Deterministic: identical inputs, identical plans.
func TestPlanDive_Deterministic(t *testing.T) {
	a, err := buhlmann.PlanDive(validProfile(), referenceOptions())
	require.NoError(t, err)
	b, err := buhlmann.PlanDive(validProfile(), referenceOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b, "plans must be reproducible bit for bit")
}
