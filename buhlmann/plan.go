// Package buhlmann - the planning pipeline.
//
// PlanDive is the single entry point consumed by CLI/UI collaborators:
// validate → simulate descent and bottom → locate the first stop →
// iterate the stop schedule → aggregate the immutable Plan. It either
// returns a fully formed Plan or a sentinel error, never a partial
// result.
package buhlmann

import "math"

// scheduleState drives the stop-schedule iterator.
//
//	atStop → ascending → atStop → … → done (terminal at surface)
type scheduleState int

const (
	stateAtStop scheduleState = iota
	stateAscending
	stateDone
)

// ambientPressure converts a depth in metres to absolute pressure in bar.
func ambientPressure(depth, surfacePressure float64) float64 {
	return surfacePressure + depth*barPerMeter
}

// PlanDive computes the staged decompression schedule for a square dive.
//
// Contract:
//   - p and o are validated in full before any simulation step runs;
//     see errors.go for the per-cause sentinels.
//   - The returned Plan is immutable; an empty Stops slice means no
//     decompression is required and is a valid outcome.
//   - Identical inputs produce identical plans.
//
// Complexity: O(16) per simulated phase plus O(16) per stop minute; both
// the per-stop and total-runtime loops are bounded by o.MaxStopMinutes
// and o.MaxRuntimeMinutes respectively.
func PlanDive(p Profile, o Options) (Plan, error) {
	// Stage 1 - boundary validation.
	if err := validateAll(p, o); err != nil {
		return Plan{}, err
	}
	coef, err := CoefficientsFor(p.Variant)
	if err != nil {
		return Plan{}, err
	}

	var (
		surface = o.SurfacePressure
		ts      = NewTissueState(surface)
		runtime float64
	)

	// Stage 2 - descent: surface → MaxDepth at a constant positive rate.
	descentTime := p.MaxDepth / o.DescentRate
	if descentTime > 0 {
		ts, err = Advance(ts, coef, p.Gas, surface, o.DescentRate*barPerMeter, descentTime)
		if err != nil {
			return Plan{}, err
		}
		runtime += descentTime
	}

	// Stage 3 - bottom: constant depth, zero pressure rate.
	bottomTime := p.BottomTime
	if o.BottomTimeIncludesDescent {
		bottomTime -= descentTime
	}
	ts, err = Advance(ts, coef, p.Gas, ambientPressure(p.MaxDepth, surface), 0, bottomTime)
	if err != nil {
		return Plan{}, err
	}
	runtime += bottomTime
	if runtime > float64(o.MaxRuntimeMinutes) {
		return Plan{}, ErrRuntimeLimitExceeded
	}

	plan := Plan{
		Variant:         p.Variant,
		MaxDepth:        p.MaxDepth,
		BottomTime:      p.BottomTime,
		GFLow:           p.GFLow,
		GFHigh:          p.GFHigh,
		SurfacePressure: surface,
	}

	// Stage 4 - first stop. If the GFlow ceiling is already satisfied at
	// the surface, the whole ascent is unconstrained: empty schedule.
	ceilingLow := coef.Ceiling(ts, p.GFLow)
	if ceilingLow <= surface {
		plan.RuntimeMinutes = runtime

		return plan, nil
	}

	firstStop := firstStopDepth(p.MaxDepth, o.StopStep, ceilingLow, surface)
	firstStopPressure := ambientPressure(firstStop, surface)

	// Stage 5 - ascend from the bottom to the first stop.
	if p.MaxDepth > firstStop {
		ascentTime := (p.MaxDepth - firstStop) / o.AscentRate
		ts, err = Advance(ts, coef, p.Gas, ambientPressure(p.MaxDepth, surface), -o.AscentRate*barPerMeter, ascentTime)
		if err != nil {
			return Plan{}, err
		}
		runtime += ascentTime
	}

	// Stage 6 - stop-schedule iterator. At a stop, load for one minute at
	// a time and poll whether the next shallower grid depth is tolerable
	// under ITS interpolated gradient factor (the ramp tightens toward
	// the surface). Minute granularity is deliberate: the ceiling depends
	// on a GF that is itself a function of the next stop depth, so a
	// closed-form stop-duration solve has no clean inversion, while
	// polling stays exact and auditable.
	var (
		state   = stateAtStop
		depth   = firstStop
		minutes int
	)
	for state != stateDone {
		next := depth - o.StopStep
		if next < 0 {
			next = 0
		}

		switch state {
		case stateAtStop:
			ts, err = Advance(ts, coef, p.Gas, ambientPressure(depth, surface), 0, 1)
			if err != nil {
				return Plan{}, err
			}
			minutes++
			runtime++
			if runtime > float64(o.MaxRuntimeMinutes) {
				return Plan{}, ErrRuntimeLimitExceeded
			}

			gf := interpolateGF(ambientPressure(next, surface), firstStopPressure, surface, p.GFLow, p.GFHigh)
			if coef.Ceiling(ts, gf) <= ambientPressure(next, surface) {
				state = stateAscending
			} else if minutes >= o.MaxStopMinutes {
				return Plan{}, ErrStopLimitExceeded
			}

		case stateAscending:
			ascentTime := (depth - next) / o.AscentRate
			ts, err = Advance(ts, coef, p.Gas, ambientPressure(depth, surface), -o.AscentRate*barPerMeter, ascentTime)
			if err != nil {
				return Plan{}, err
			}
			runtime += ascentTime

			plan.Stops = append(plan.Stops, Stop{Depth: depth, Minutes: minutes})
			minutes = 0
			depth = next
			if depth <= 0 {
				state = stateDone
			} else {
				state = stateAtStop
			}
		}
	}

	plan.RuntimeMinutes = runtime

	return plan, nil
}

// firstStopDepth locates the shallowest grid depth at which staged
// decompression must begin: starting from the grid depth at or below the
// bottom, it keeps shallowing the candidate while the next shallower
// increment would still satisfy the GFlow ceiling. The loop shrinks
// candidate by step every iteration and stops before it can go negative,
// so it terminates after at most depth/step iterations.
//
// The "pin one increment above the surface" fallback is a conservative
// implementation choice for an exhausted search, not a physiology
// guarantee.
//
// Complexity: O(depth/step).
func firstStopDepth(depth, step, ceilingLow, surfacePressure float64) float64 {
	candidate := math.Floor(depth/step) * step
	for candidate-step >= 0 && ambientPressure(candidate-step, surfacePressure) >= ceilingLow {
		candidate -= step
	}
	if candidate <= 0 {
		candidate = step // conservative pin
	}

	return candidate
}
