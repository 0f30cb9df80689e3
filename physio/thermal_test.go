package physio_test

import (
	"testing"

	"github.com/katalvlaran/decoplan/physio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWindChill_KnownValues anchors the JAG/TI regression on hand-checked
// points.
func TestWindChill_KnownValues(t *testing.T) {
	cases := []struct {
		tempC, windKmh, want float64
	}{
		{-10, 30, -19.520498},
		{0, 20, -5.242223},
		{-20, 50, -35.400468},
	}
	for _, tc := range cases {
		got, err := physio.WindChill(tc.tempC, tc.windKmh)
		require.NoError(t, err, "T=%v v=%v", tc.tempC, tc.windKmh)
		assert.InDelta(t, tc.want, got, 1e-5, "T=%v v=%v", tc.tempC, tc.windKmh)
	}
}

// TestWindChill_ColderThanAir: with any real wind the index must sit
// below the air temperature.
func TestWindChill_ColderThanAir(t *testing.T) {
	got, err := physio.WindChill(-5, 25)
	require.NoError(t, err)
	assert.Less(t, got, -5.0, "wind must make it feel colder")
}

// TestWindChill_OutsideEnvelope rejects warm or calm conditions instead
// of extrapolating the regression.
func TestWindChill_OutsideEnvelope(t *testing.T) {
	_, err := physio.WindChill(15, 30)
	assert.ErrorIs(t, err, physio.ErrWindChillRange, "warm air is out of range")

	_, err = physio.WindChill(-10, 3)
	assert.ErrorIs(t, err, physio.ErrWindChillRange, "calm air is out of range")
}

// TestHeatIndex_KnownValues anchors both the Rothfusz branch and the
// low-range simple-formula branch.
func TestHeatIndex_KnownValues(t *testing.T) {
	cases := []struct {
		tempC, rh, want float64
	}{
		{32, 70, 40.409274}, // full regression
		{40, 50, 54.767952}, // full regression
		{25, 50, 24.861111}, // simple-formula branch
	}
	for _, tc := range cases {
		got, err := physio.HeatIndex(tc.tempC, tc.rh)
		require.NoError(t, err, "T=%v rh=%v", tc.tempC, tc.rh)
		assert.InDelta(t, tc.want, got, 1e-5, "T=%v rh=%v", tc.tempC, tc.rh)
	}
}

// TestHeatIndex_HumidityRange rejects impossible humidity.
func TestHeatIndex_HumidityRange(t *testing.T) {
	_, err := physio.HeatIndex(30, -1)
	assert.ErrorIs(t, err, physio.ErrHumidityRange)

	_, err = physio.HeatIndex(30, 101)
	assert.ErrorIs(t, err, physio.ErrHumidityRange)
}

// TestSweatRate_FluidBalance: 0.8 kg lost, 1.0 L drunk, 0.2 L urine over
// two hours is 0.8 L/h.
func TestSweatRate_FluidBalance(t *testing.T) {
	got, err := physio.SweatRate(80.0, 79.2, 1.0, 0.2, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, got, 1e-9)
}

// TestSweatRate_Validation covers each rejection cause.
func TestSweatRate_Validation(t *testing.T) {
	_, err := physio.SweatRate(0, 79, 1, 0, 2)
	assert.ErrorIs(t, err, physio.ErrBadWeight)

	_, err = physio.SweatRate(80, 79, -1, 0, 2)
	assert.ErrorIs(t, err, physio.ErrBadFluidVolume)

	_, err = physio.SweatRate(80, 79, 1, 0, 0)
	assert.ErrorIs(t, err, physio.ErrBadDuration)
}
