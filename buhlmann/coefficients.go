// Package buhlmann - ZH-L16 per-compartment coefficient tables.
//
// The tables are process-wide constant data: CoefficientsFor returns a
// copy, so callers can never corrupt the canonical values.
package buhlmann

// ModelVariant selects one of the published ZH-L16 coefficient sets.
type ModelVariant string

const (
	// ModelB is the ZH-L16B set (table-calculation variant).
	ModelB ModelVariant = "B"

	// ModelC is the ZH-L16C set (dive-computer variant, more
	// conservative in the middle compartments).
	ModelC ModelVariant = "C"
)

// compartments is the fixed number of tissue compartments in ZH-L16.
const compartments = 16

// Coefficients bundles the six fixed-length-16 sequences that fully
// describe one ZH-L16 variant: Bühlmann A/B values and half-times,
// per inert gas.
type Coefficients struct {
	AN2, BN2 [compartments]float64 // nitrogen M-value coefficients
	AHe, BHe [compartments]float64 // helium M-value coefficients

	HalfTimeN2 [compartments]float64 // nitrogen half-times, minutes
	HalfTimeHe [compartments]float64 // helium half-times, minutes
}

// Half-times are shared by both variants. The first compartment uses the
// 5.0-minute "1b" value.
var (
	halfTimeN2 = [compartments]float64{
		5.0, 8.0, 12.5, 18.5, 27.0, 38.3, 54.3, 77.0,
		109.0, 146.0, 187.0, 239.0, 305.0, 390.0, 498.0, 635.0,
	}
	halfTimeHe = [compartments]float64{
		1.88, 3.02, 4.72, 6.99, 10.21, 14.48, 20.53, 29.11,
		41.20, 55.19, 70.69, 90.34, 115.29, 147.42, 188.24, 240.03,
	}
)

// B values are identical across variants; only the nitrogen A values
// were re-fitted between ZH-L16B and ZH-L16C.
var (
	bN2 = [compartments]float64{
		0.5578, 0.6514, 0.7222, 0.7825, 0.8126, 0.8434, 0.8693, 0.8910,
		0.9092, 0.9222, 0.9319, 0.9403, 0.9477, 0.9544, 0.9602, 0.9653,
	}
	aHe = [compartments]float64{
		1.6189, 1.3830, 1.1919, 1.0458, 0.9220, 0.8205, 0.7305, 0.6502,
		0.5950, 0.5545, 0.5333, 0.5189, 0.5181, 0.5176, 0.5172, 0.5119,
	}
	bHe = [compartments]float64{
		0.4770, 0.5747, 0.6527, 0.7223, 0.7582, 0.7957, 0.8279, 0.8553,
		0.8757, 0.8903, 0.8997, 0.9073, 0.9122, 0.9171, 0.9217, 0.9267,
	}

	aN2B = [compartments]float64{
		1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5600, 0.4947, 0.4500,
		0.4187, 0.3798, 0.3497, 0.3223, 0.2850, 0.2737, 0.2523, 0.2327,
	}
	aN2C = [compartments]float64{
		1.1696, 1.0000, 0.8618, 0.7562, 0.6200, 0.5043, 0.4410, 0.4000,
		0.3750, 0.3500, 0.3295, 0.3065, 0.2835, 0.2610, 0.2480, 0.2327,
	}
)

// CoefficientsFor returns the coefficient set for the given variant.
// The result is a value copy; mutating it has no effect on later calls.
//
// Errors: ErrUnknownVariant for any name other than "B" or "C".
//
// Complexity: O(1) lookup, O(16) copy.
func CoefficientsFor(v ModelVariant) (Coefficients, error) {
	c := Coefficients{
		BN2:        bN2,
		AHe:        aHe,
		BHe:        bHe,
		HalfTimeN2: halfTimeN2,
		HalfTimeHe: halfTimeHe,
	}

	switch v {
	case ModelB:
		c.AN2 = aN2B
	case ModelC:
		c.AN2 = aN2C
	default:
		return Coefficients{}, ErrUnknownVariant
	}

	return c, nil
}
