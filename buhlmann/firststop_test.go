package buhlmann

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSurface = 1.01325

// TestFirstStopDepth_ShallowsToTheCeiling: the search walks the grid
// surface-ward and settles on the shallowest depth whose next increment
// would violate the ceiling.
func TestFirstStopDepth_ShallowsToTheCeiling(t *testing.T) {
	// Ceiling at ~19.4 m: 18 m is too shallow, 21 m is the first stop.
	got := firstStopDepth(40, 3, 2.95, testSurface)
	assert.InDelta(t, 21.0, got, 0, "first stop must sit just below the ceiling")
}

// TestFirstStopDepth_GridMultipleBottomIsLegal: when the bottom depth is
// itself on the grid and already constrained, the stop stays at the
// bottom ("at or below").
func TestFirstStopDepth_GridMultipleBottomIsLegal(t *testing.T) {
	// Ceiling at 28 m: even 27 m violates it, so the 30 m candidate holds.
	got := firstStopDepth(30, 3, 3.81325, testSurface)
	assert.InDelta(t, 30.0, got, 0, "a stop exactly at the bottom depth is allowed")
}

// TestFirstStopDepth_NearSurfaceCeilingStopsAtOneIncrement: a ceiling
// barely above the surface still yields a real stop at one grid step.
func TestFirstStopDepth_NearSurfaceCeilingStopsAtOneIncrement(t *testing.T) {
	got := firstStopDepth(30, 3, 1.05, testSurface)
	assert.InDelta(t, 3.0, got, 0, "shallowest possible stop is one grid increment")
}

// TestFirstStopDepth_PinWhenGridCollapses: a bottom shallower than one
// grid step floors the candidate to zero; the conservative pin keeps the
// stop one increment above the surface.
func TestFirstStopDepth_PinWhenGridCollapses(t *testing.T) {
	got := firstStopDepth(2, 3, 1.2, testSurface)
	assert.InDelta(t, 3.0, got, 0, "exhausted search must pin to one grid increment")
}

// TestFirstStopDepth_Terminates: the walk covers the whole grid in one
// pass even when every increment clears the ceiling.
func TestFirstStopDepth_Terminates(t *testing.T) {
	got := firstStopDepth(300, 3, 1.0135, testSurface)
	assert.InDelta(t, 3.0, got, 0, "an unconstrained walk must reach the shallowest stop")
}
