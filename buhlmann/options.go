package buhlmann

// Default planner settings. Rates follow common recreational-technical
// practice; the loop bounds are generous enough for any realistic
// schedule while still guaranteeing termination.
const (
	// DefaultSurfacePressure is one standard atmosphere in bar.
	DefaultSurfacePressure = 1.01325

	// DefaultDescentRate in metres per minute.
	DefaultDescentRate = 20.0

	// DefaultAscentRate in metres per minute.
	DefaultAscentRate = 10.0

	// DefaultStopStep is the stop-grid increment in metres.
	DefaultStopStep = 3.0

	// DefaultMaxStopMinutes bounds the minutes spent at any single stop.
	DefaultMaxStopMinutes = 360

	// DefaultMaxRuntimeMinutes bounds the whole plan, descent included.
	DefaultMaxRuntimeMinutes = 1440
)

// Options configures the behavior of PlanDive.
//
// SurfacePressure           – ambient pressure at the surface, bar. Must be > 0.
// DescentRate / AscentRate  – vertical speeds, metres per minute. Must be > 0.
// StopStep                  – stop-grid increment, metres. Must be > 0.
// BottomTimeIncludesDescent – when true, the requested bottom time is
//
//	measured from leaving the surface, so the constant-depth phase is
//	shortened by the descent duration.
//
// MaxStopMinutes            – hard bound on a single stop; exceeding it
//
//	fails the plan with ErrStopLimitExceeded.
//
// MaxRuntimeMinutes         – hard bound on the whole schedule; exceeding
//
//	it fails the plan with ErrRuntimeLimitExceeded.
type Options struct {
	SurfacePressure           float64
	DescentRate               float64
	AscentRate                float64
	StopStep                  float64
	BottomTimeIncludesDescent bool
	MaxStopMinutes            int
	MaxRuntimeMinutes         int
}

// Option represents a functional option for configuring PlanDive.
type Option func(*Options)

// WithSurfacePressure overrides the surface pressure in bar (altitude
// diving, non-standard atmospheres).
func WithSurfacePressure(bar float64) Option {
	return func(o *Options) { o.SurfacePressure = bar }
}

// WithRates overrides the descent and ascent rates in metres per minute.
func WithRates(descent, ascent float64) Option {
	return func(o *Options) {
		o.DescentRate = descent
		o.AscentRate = ascent
	}
}

// WithStopStep overrides the stop-grid increment in metres.
func WithStopStep(metres float64) Option {
	return func(o *Options) { o.StopStep = metres }
}

// WithBottomTimeIncludesDescent selects the descent-inclusive bottom
// time convention.
func WithBottomTimeIncludesDescent() Option {
	return func(o *Options) { o.BottomTimeIncludesDescent = true }
}

// WithBounds overrides both termination bounds (minutes).
func WithBounds(maxStop, maxRuntime int) Option {
	return func(o *Options) {
		o.MaxStopMinutes = maxStop
		o.MaxRuntimeMinutes = maxRuntime
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use it as the starting point for functional overrides:
//
//	opts := buhlmann.DefaultOptions(buhlmann.WithStopStep(5))
func DefaultOptions(overrides ...Option) Options {
	o := Options{
		SurfacePressure:   DefaultSurfacePressure,
		DescentRate:       DefaultDescentRate,
		AscentRate:        DefaultAscentRate,
		StopStep:          DefaultStopStep,
		MaxStopMinutes:    DefaultMaxStopMinutes,
		MaxRuntimeMinutes: DefaultMaxRuntimeMinutes,
	}
	for _, fn := range overrides {
		fn(&o)
	}

	return o
}
