// Package engine draws Secret Santa assignments.
//
// Generate produces a derangement of a roster: every participant gives
// exactly once, receives exactly once, and never draws themselves. The
// draw is a greedy pass in roster order with restart on dead end, bounded
// by DefaultMaxAttempts (overridable with WithMaxAttempts).
//
// Randomness is injected through Source. Production code uses the
// runtime-seeded math/rand/v2 generator; tests use NewSeededSource for
// reproducible draws or ScriptedSource to dictate every pick:
//
//	eng := engine.New(
//		engine.WithSource(engine.NewScriptedSource(1, 0, 0)),
//		engine.WithIDGenerator(engine.NewFixedGenerator("set-1")),
//	)
//	set, err := eng.Generate(roster)
//
// Existing is the read-only counterpart: it reconstructs assignments
// recorded in the roster's secret-child fields without drawing anything.
package engine
