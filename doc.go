// Package decoplan is a deterministic decompression-schedule planner
// for square dive profiles, built on the Bühlmann ZH-L16 inert-gas
// model with Gradient Factor conservatism.
//
// 🚀 What is decoplan?
//
//	A pure-Go toolkit that brings together:
//		• buhlmann/ — the ZH-L16 B/C tissue model, Schreiner integration,
//		  gradient-factor ceilings and the staged-ascent planner
//		• divelog/  — a SQLite logbook for saved plans (modernc.org/sqlite)
//		• physio/   — field physiology calculators: wind chill, heat
//		  index, sweat rate, noise dose, oxygen cascade
//		• cmd/decoplan — the command-line front end (cobra + viper)
//
// ✨ Why choose decoplan?
//
//   - Deterministic – identical inputs always produce identical plans;
//     no randomness, no clock dependence, no hidden global state
//   - Bounded – every search loop carries an explicit caller-overridable
//     bound; "would not terminate" is a sentinel error, never a hang
//   - Value semantics – tissue states are immutable values, so
//     independent plans run in parallel with no synchronization
//
// ⚙️ Quick start:
//
//	profile := buhlmann.Profile{
//	  MaxDepth: 40, BottomTime: 35, Gas: buhlmann.Air,
//	  GFLow: 0.30, GFHigh: 0.85, Variant: buhlmann.ModelC,
//	}
//	opts := buhlmann.DefaultOptions(buhlmann.WithBottomTimeIncludesDescent())
//	plan, err := buhlmann.PlanDive(profile, opts)
//
// Decoplan is a research and education tool. It is not a dive computer
// and must not be used to conduct actual dives.
package decoplan
