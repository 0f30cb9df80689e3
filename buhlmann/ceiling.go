// Package buhlmann - decompression ceilings and gradient-factor ramps.
package buhlmann

// Ceiling returns the most restrictive tolerated ambient pressure (bar)
// across all compartments for gradient factor g.
//
// Per compartment the N2/He coefficients are blended by each gas's share
// of the total loading:
//
//	aMix = (aN2·pN2 + aHe·pHe) / pTotal      (bMix analogously)
//	pLimit = (pTotal − aMix·g) / (g/bMix + 1 − g)
//
// and the ceiling is the maximum pLimit. A compartment with zero total
// loading is unconstrained by policy: it contributes 0 rather than a
// division error.
//
// Contract: g ∈ (0, 1.5], validated at the PlanDive boundary.
//
// Complexity: O(16).
func (c Coefficients) Ceiling(ts TissueState, g float64) float64 {
	var ceiling float64
	for i := range ts {
		total := ts[i].total()
		if total <= 0 {
			continue // unconstrained
		}

		aMix := (c.AN2[i]*ts[i].PN2 + c.AHe[i]*ts[i].PHe) / total
		bMix := (c.BN2[i]*ts[i].PN2 + c.BHe[i]*ts[i].PHe) / total

		limit := (total - aMix*g) / (g/bMix + 1 - g)
		if limit > ceiling {
			ceiling = limit
		}
	}

	return ceiling
}

// interpolateGF ramps the gradient factor linearly in ambient pressure,
// from gfLow at the first stop to gfHigh at the surface. The fraction is
// clamped to [0,1] so pressures outside the ramp saturate instead of
// extrapolating.
func interpolateGF(pAmb, firstStopPressure, surfacePressure, gfLow, gfHigh float64) float64 {
	if firstStopPressure <= surfacePressure {
		return gfHigh // no stops: the surface factor applies directly
	}

	frac := (firstStopPressure - pAmb) / (firstStopPressure - surfacePressure)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	return gfLow + frac*(gfHigh-gfLow)
}
