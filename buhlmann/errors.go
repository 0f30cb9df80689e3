package buhlmann

import "errors"

// Sentinel errors returned by the planner. All validation happens at the
// PlanDive boundary (or in Advance for the duration contract); internal
// helpers assume pre-validated values.
var (
	// ErrUnknownVariant indicates a model-variant name other than "B" or "C".
	ErrUnknownVariant = errors.New("buhlmann: unknown model variant")

	// ErrBadDepth indicates a negative maximum depth.
	ErrBadDepth = errors.New("buhlmann: max depth must be non-negative")

	// ErrBadBottomTime indicates a non-positive bottom time, or a
	// descent-inclusive bottom time shorter than the descent itself.
	ErrBadBottomTime = errors.New("buhlmann: bottom time must exceed descent time and be positive")

	// ErrBadGasMix indicates gas fractions outside [0,1) or O2+He ≥ 1.
	ErrBadGasMix = errors.New("buhlmann: gas fractions must be non-negative with o2+he < 1")

	// ErrBadGradientFactor indicates a gradient factor outside (0, 1.5].
	ErrBadGradientFactor = errors.New("buhlmann: gradient factors must lie in (0, 1.5]")

	// ErrGradientOrder indicates GFHigh < GFLow.
	ErrGradientOrder = errors.New("buhlmann: gf_high must be >= gf_low")

	// ErrBadRate indicates a non-positive descent or ascent rate.
	ErrBadRate = errors.New("buhlmann: descent and ascent rates must be positive")

	// ErrBadStopStep indicates a non-positive stop-grid step.
	ErrBadStopStep = errors.New("buhlmann: stop step must be positive")

	// ErrBadSurfacePressure indicates a non-positive surface pressure.
	ErrBadSurfacePressure = errors.New("buhlmann: surface pressure must be positive")

	// ErrBadBound indicates a non-positive stop-minute or runtime bound.
	ErrBadBound = errors.New("buhlmann: loop bounds must be positive")

	// ErrBadDuration indicates a non-positive integration duration.
	ErrBadDuration = errors.New("buhlmann: segment duration must be positive")

	// ErrStopLimitExceeded is returned when a single stop would exceed
	// MaxStopMinutes. The configured scenario cannot produce a
	// terminating schedule; retry with different inputs.
	ErrStopLimitExceeded = errors.New("buhlmann: max stop minutes exceeded")

	// ErrRuntimeLimitExceeded is returned when the whole plan (descent,
	// bottom and stops) would exceed MaxRuntimeMinutes.
	ErrRuntimeLimitExceeded = errors.New("buhlmann: max total runtime exceeded")
)
