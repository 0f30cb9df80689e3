// Package buhlmann plans staged decompression schedules for square dive
// profiles using the Bühlmann ZH-L16 inert-gas model with Gradient Factors.
//
// 🚀 What does it compute?
//
//	Given a maximum depth, a bottom time and a breathing mix, the planner
//	simulates inert-gas loading across 16 hypothetical tissue compartments
//	(descent → bottom → staged ascent) and emits the ordered list of
//	decompression stops required to keep every compartment inside its
//	gradient-factor-derated tolerance on the way to the surface.
//
// ✨ Key features:
//   - ZH-L16 model variants "B" and "C" (per-compartment A/B coefficients)
//   - closed-form Schreiner integration over linear pressure ramps —
//     no per-minute sub-stepping on continuous descent/ascent phases
//   - mixed-gas (N₂/He) ceilings weighted by each gas's share of loading
//   - gradient-factor interpolation from GFlow at the first stop to
//     GFhigh at the surface
//   - immutable TissueState values: every update returns a new state,
//     so independent plans may run in parallel with no synchronization
//   - every search loop carries an explicit caller-overridable bound;
//     "would not terminate" becomes a sentinel error, never a hang
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decoplan/buhlmann"
//
//	profile := buhlmann.Profile{
//	  MaxDepth:   40,                         // metres
//	  BottomTime: 35,                         // minutes, descent included
//	  Gas:        buhlmann.Air,
//	  GFLow:      0.30,
//	  GFHigh:     0.85,
//	  Variant:    buhlmann.ModelC,
//	}
//	opts := buhlmann.DefaultOptions(buhlmann.WithBottomTimeIncludesDescent())
//	plan, err := buhlmann.PlanDive(profile, opts)
//	if err != nil {
//	  // handle validation or bound-exceeded sentinels
//	}
//	fmt.Println(plan.Stops, plan.TotalDecompressionMinutes())
//
// Determinism:
//
//	Identical inputs always produce identical plans. There is no
//	randomness, no clock dependence and no hidden global state.
//
// Complexity:
//
//	O(S·M·16) where S is the number of stops and M the minutes spent at
//	them; descent, bottom and each inter-stop ascent cost O(16) exactly.
//
// The planner is a research and education tool. It is not a dive
// computer and carries no regulatory or operational certification.
package buhlmann
