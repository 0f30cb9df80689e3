package physio

import "errors"

// Sentinel errors shared by the calculators.
var (
	// ErrWindChillRange indicates inputs outside the formula's validity
	// envelope (air temperature ≤ 10 °C, wind ≥ 4.8 km/h).
	ErrWindChillRange = errors.New("physio: wind chill defined only for temp <= 10C and wind >= 4.8 km/h")

	// ErrHumidityRange indicates relative humidity outside [0, 100].
	ErrHumidityRange = errors.New("physio: relative humidity must lie in [0, 100]")

	// ErrBadWeight indicates a non-positive body weight.
	ErrBadWeight = errors.New("physio: body weights must be positive")

	// ErrBadDuration indicates a non-positive exposure or session duration.
	ErrBadDuration = errors.New("physio: duration must be positive")

	// ErrBadFluidVolume indicates a negative intake or urine volume.
	ErrBadFluidVolume = errors.New("physio: fluid volumes must be non-negative")

	// ErrNoExposures indicates an empty noise-exposure list.
	ErrNoExposures = errors.New("physio: at least one noise exposure is required")

	// ErrBadNoiseLevel indicates a non-positive sound level.
	ErrBadNoiseLevel = errors.New("physio: sound level must be positive dBA")

	// ErrBadDose indicates a non-positive noise dose.
	ErrBadDose = errors.New("physio: dose must be positive percent")

	// ErrBadRatio indicates a non-positive respiratory quotient.
	ErrBadRatio = errors.New("physio: ratio must be positive")

	// ErrBadFraction indicates a fraction outside (0, 1].
	ErrBadFraction = errors.New("physio: fraction must lie in (0, 1]")

	// ErrBadPressure indicates a non-positive pressure.
	ErrBadPressure = errors.New("physio: pressure must be positive")

	// ErrBadConcentration indicates a non-positive hemoglobin or cardiac value.
	ErrBadConcentration = errors.New("physio: concentration must be positive")
)
