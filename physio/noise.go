// Package physio - occupational noise exposure (OSHA criterion).
package physio

import "math"

// OSHA permissible-exposure parameters: 90 dBA criterion level over an
// 8-hour reference duration with a 5 dB exchange rate.
const (
	noiseCriterionLevel = 90.0
	noiseReferenceHours = 8.0
	noiseExchangeRate   = 5.0
)

// NoiseExposure is one constant-level segment of a working day.
type NoiseExposure struct {
	LevelDBA float64 // A-weighted sound level
	Hours    float64 // time spent at that level
}

// NoiseDose returns the daily noise dose in percent of the OSHA
// permissible exposure:
//
//	D = 100 · Σ Cᵢ/Tᵢ,  Tᵢ = 8 / 2^((Lᵢ−90)/5)
//
// A dose of 100% is the permissible limit; above it, hearing
// conservation measures are mandated.
//
// Errors: ErrNoExposures for an empty list, ErrBadNoiseLevel /
// ErrBadDuration for malformed segments.
func NoiseDose(exposures []NoiseExposure) (float64, error) {
	if len(exposures) == 0 {
		return 0, ErrNoExposures
	}

	var dose float64
	for _, e := range exposures {
		if e.LevelDBA <= 0 {
			return 0, ErrBadNoiseLevel
		}
		if e.Hours <= 0 {
			return 0, ErrBadDuration
		}

		permitted := noiseReferenceHours / math.Pow(2, (e.LevelDBA-noiseCriterionLevel)/noiseExchangeRate)
		dose += e.Hours / permitted
	}

	return 100 * dose, nil
}

// TWA converts a noise dose (percent) to the equivalent 8-hour
// time-weighted average sound level in dBA:
//
//	TWA = 16.61·log₁₀(D/100) + 90
//
// Errors: ErrBadDose for a non-positive dose.
func TWA(dosePercent float64) (float64, error) {
	if dosePercent <= 0 {
		return 0, ErrBadDose
	}

	return 16.61*math.Log10(dosePercent/100) + noiseCriterionLevel, nil
}
