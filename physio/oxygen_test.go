package physio_test

import (
	"testing"

	"github.com/katalvlaran/decoplan/physio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlveolarO2_RoomAir: the textbook sea-level case, FiO2 0.21 at
// 760 mmHg with PaCO2 40 and RQ 0.8.
func TestAlveolarO2_RoomAir(t *testing.T) {
	pao2, err := physio.AlveolarO2(0.21, 760, 40, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 99.73, pao2, 1e-9)
}

// TestAlveolarO2_Validation covers each rejection cause.
func TestAlveolarO2_Validation(t *testing.T) {
	_, err := physio.AlveolarO2(0, 760, 40, 0.8)
	assert.ErrorIs(t, err, physio.ErrBadFraction)

	_, err = physio.AlveolarO2(0.21, 0, 40, 0.8)
	assert.ErrorIs(t, err, physio.ErrBadPressure)

	_, err = physio.AlveolarO2(0.21, 760, 40, 0)
	assert.ErrorIs(t, err, physio.ErrBadRatio)
}

// TestArterialO2Content_Normal: Hb 15 g/dL at 98% saturation with
// PaO2 95 mmHg.
func TestArterialO2Content_Normal(t *testing.T) {
	cao2, err := physio.ArterialO2Content(15, 0.98, 95)
	require.NoError(t, err)
	assert.InDelta(t, 19.983, cao2, 1e-9)
}

// TestOxygenDelivery_Normal: cardiac output 5 L/min at normal content.
func TestOxygenDelivery_Normal(t *testing.T) {
	do2, err := physio.OxygenDelivery(5, 19.983)
	require.NoError(t, err)
	assert.InDelta(t, 999.15, do2, 1e-9)
}

// TestOxygenCascade_Chained wires the three formulas the way a report
// would: alveolar tension → content → delivery.
func TestOxygenCascade_Chained(t *testing.T) {
	pao2, err := physio.AlveolarO2(0.21, 760, 40, 0.8)
	require.NoError(t, err)

	// Assume an A-a gradient of 5 mmHg for the arterial tension.
	cao2, err := physio.ArterialO2Content(15, 0.98, pao2-5)
	require.NoError(t, err)

	do2, err := physio.OxygenDelivery(5, cao2)
	require.NoError(t, err)
	assert.Greater(t, do2, 900.0, "normal delivery sits near 1 L/min")
	assert.Less(t, do2, 1100.0)
}

// TestArterialO2Content_Validation covers the rejection causes.
func TestArterialO2Content_Validation(t *testing.T) {
	_, err := physio.ArterialO2Content(0, 0.98, 95)
	assert.ErrorIs(t, err, physio.ErrBadConcentration)

	_, err = physio.ArterialO2Content(15, 1.2, 95)
	assert.ErrorIs(t, err, physio.ErrBadFraction)

	_, err = physio.ArterialO2Content(15, 0.98, -1)
	assert.ErrorIs(t, err, physio.ErrBadPressure)
}
