// Package buhlmann - closed-form tissue-loading integration.
//
// The Schreiner equation is the exact integral of single-compartment
// exponential gas kinetics under a linearly changing ambient pressure,
// so one call per compartment covers an entire constant-rate phase with
// no sub-stepping.
package buhlmann

import "math"

// ln2 is reused for half-time → rate-constant conversion.
var ln2 = math.Ln2

// schreiner advances one gas in one compartment.
//
//	pNew = pAlv + R·(t − 1/k) − (pAlv − p0 − R/k)·e^(−k·t)
//
// p0   – initial partial pressure, bar
// pAlv – alveolar partial pressure of the gas at phase start, bar
// r    – rate of change of the alveolar partial pressure, bar/min
//
//	(zero at constant depth, negative on ascent)
//
// k    – compartment rate constant, ln2 / half-time
// t    – phase duration, minutes, > 0
//
// Complexity: O(1).
func schreiner(p0, pAlv, r, k, t float64) float64 {
	return pAlv + r*(t-1/k) - (pAlv-p0-r/k)*math.Exp(-k*t)
}

// Advance integrates every compartment of ts across one constant-rate
// pressure ramp and returns the resulting state. ts itself is never
// modified.
//
// Contract:
//   - startPressure is the absolute ambient pressure (bar) at phase start.
//   - rate is the ambient-pressure rate of change in bar/min: zero for a
//     constant-depth hold, positive on descent, negative on ascent.
//   - minutes must be > 0; anything else is ErrBadDuration, not a no-op.
//
// Complexity: O(16), a fixed bounded loop.
func Advance(ts TissueState, c Coefficients, gas GasMix, startPressure, rate, minutes float64) (TissueState, error) {
	if minutes <= 0 {
		return TissueState{}, ErrBadDuration
	}

	var (
		out TissueState
		fn2 = gas.N2()
		fhe = gas.He
	)
	for i := range ts {
		kN2 := ln2 / c.HalfTimeN2[i]
		kHe := ln2 / c.HalfTimeHe[i]

		out[i] = Compartment{
			PN2: schreiner(ts[i].PN2, fn2*(startPressure-waterVaporPressure), fn2*rate, kN2, minutes),
			PHe: schreiner(ts[i].PHe, fhe*(startPressure-waterVaporPressure), fhe*rate, kHe, minutes),
		}
	}

	return out, nil
}
