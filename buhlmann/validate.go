// Package buhlmann - entry-boundary validation.
//
// All caller-input checking happens here, before any simulation step
// runs. Internal helpers assume pre-validated values and only sentinel
// errors from errors.go are returned.
package buhlmann

// validateAll verifies Profile + Options in stages. Each failure is
// attributable to a single sentinel.
//
// Complexity: O(1).
func validateAll(p Profile, o Options) error {
	// Stage 1: profile geometry and timing.
	if p.MaxDepth < 0 {
		return ErrBadDepth
	}
	if p.BottomTime <= 0 {
		return ErrBadBottomTime
	}

	// Stage 2: breathing mixture.
	if err := validateGas(p.Gas); err != nil {
		return err
	}

	// Stage 3: gradient factors.
	if err := validateGF(p.GFLow); err != nil {
		return err
	}
	if err := validateGF(p.GFHigh); err != nil {
		return err
	}
	if p.GFHigh < p.GFLow {
		return ErrGradientOrder
	}

	// Stage 4: model variant (full table lookup happens later; the name
	// is rejected here so simulation never starts on a bad variant).
	if _, err := CoefficientsFor(p.Variant); err != nil {
		return err
	}

	// Stage 5: options.
	if o.SurfacePressure <= 0 {
		return ErrBadSurfacePressure
	}
	if o.DescentRate <= 0 || o.AscentRate <= 0 {
		return ErrBadRate
	}
	if o.StopStep <= 0 {
		return ErrBadStopStep
	}
	if o.MaxStopMinutes <= 0 || o.MaxRuntimeMinutes <= 0 {
		return ErrBadBound
	}

	// Stage 6: timing convention. Under the descent-inclusive convention
	// the constant-depth phase must keep a positive duration.
	if o.BottomTimeIncludesDescent && p.BottomTime <= p.MaxDepth/o.DescentRate {
		return ErrBadBottomTime
	}

	return nil
}

// validateGas enforces non-negative fractions with o2 + he < 1 and a
// breathable oxygen share.
func validateGas(g GasMix) error {
	if g.O2 <= 0 || g.He < 0 || g.O2+g.He >= 1 {
		return ErrBadGasMix
	}

	return nil
}

// validateGF enforces the (0, 1.5] envelope shared by GFLow and GFHigh.
func validateGF(gf float64) error {
	if gf <= 0 || gf > 1.5 {
		return ErrBadGradientFactor
	}

	return nil
}
