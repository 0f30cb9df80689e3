// Package divelog persists planned dive schedules in a local SQLite
// database.
//
// 🚀 What does it store?
//
//	One row per saved plan: the profile inputs, the gradient-factor
//	window, the breathing mix, the computed runtime and the full stop
//	schedule (encoded as JSON). Rows are keyed by UUID and stamped with
//	the save time, so a logbook survives process restarts and lists
//	newest-first.
//
// ✨ Key features:
//   - single-file SQLite storage (modernc.org/sqlite, pure Go, WAL mode)
//   - idempotent schema migration on Open — no external tooling
//   - write, point-read and newest-first list paths (SaveDive, Dive,
//     RecentDives)
//
// ⚙️ Usage:
//
//	store, err := divelog.Open("dives.db")
//	if err != nil { ... }
//	defer store.Close()
//
//	rec, err := store.SaveDive(profile, plan, "house reef, morning")
//	recent, err := store.RecentDives(10)
//
// Plans are cheap to recompute but the inputs that produced them are
// not: a logbook of what was planned, with which gas and which
// conservatism, is the artifact divers keep.
package divelog
