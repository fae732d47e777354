package harness

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/engine"
)

// defaultSetID keeps golden traces stable when a scenario names no ID.
const defaultSetID = "test-set-default"

// Result is the outcome of running a scenario.
type Result struct {
	Scenario string

	// Set is the generated set, nil when generation failed.
	Set *core.AssignmentSet

	// Err is the generation error, nil on success.
	Err error

	// Failures lists every violated expectation or invariant.
	Failures []string
}

// Passed reports whether the scenario met all expectations.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Outcome is "ok" on success and the error code otherwise.
func (r *Result) Outcome() string {
	if r.Err == nil {
		return "ok"
	}
	if code := core.CodeOf(r.Err); code != "" {
		return string(code)
	}
	return r.Err.Error()
}

// Run executes a scenario against a fresh engine.
func Run(s *Scenario) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scenario")
	}

	eng := engine.New(
		engine.WithSource(sourceFor(s)),
		engine.WithIDGenerator(engine.NewFixedGenerator(lo.Ternary(s.SetID != "", s.SetID, defaultSetID))),
		engine.WithMaxAttempts(s.MaxAttempts),
	)

	slog.Debug("running scenario", "name", s.Name, "participants", len(s.Roster))

	set, err := eng.Generate(s.Roster)
	result := &Result{Scenario: s.Name, Set: set, Err: err}

	if set != nil {
		if verr := core.ValidateDerangement(len(s.Roster), set.Assignments); verr != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("invariant: %v", verr))
		}
	}
	result.Failures = append(result.Failures, check(s.Expect, result)...)

	return result, nil
}

func sourceFor(s *Scenario) engine.Source {
	switch {
	case len(s.Picks) > 0:
		return engine.NewScriptedSource(s.Picks...)
	case s.Seed != nil:
		return engine.NewSeededSource(*s.Seed)
	default:
		return engine.NewSeededSource(0)
	}
}

// check compares a result with its expectations.
func check(want Expect, r *Result) []string {
	var failures []string

	if want.Error != "" {
		if got := r.Outcome(); got != want.Error {
			failures = append(failures, fmt.Sprintf("expected error %s, got %s", want.Error, got))
		}
		return failures
	}

	if r.Err != nil {
		return append(failures, fmt.Sprintf("unexpected error: %v", r.Err))
	}

	if want.Size > 0 && r.Set.Len() != want.Size {
		failures = append(failures, fmt.Sprintf("expected %d assignments, got %d", want.Size, r.Set.Len()))
	}
	if want.Attempts > 0 && r.Set.Attempts != want.Attempts {
		failures = append(failures, fmt.Sprintf("expected %d attempts, got %d", want.Attempts, r.Set.Attempts))
	}
	if len(want.Receivers) > 0 {
		got := lo.Map(r.Set.Assignments, func(a core.Assignment, _ int) string {
			return a.Receiver.Name
		})
		if !slices.Equal(got, want.Receivers) {
			failures = append(failures, fmt.Sprintf("expected receivers %v, got %v", want.Receivers, got))
		}
	}

	return failures
}
