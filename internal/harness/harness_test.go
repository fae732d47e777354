package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/santa/internal/core"
)

var scenarioDir = filepath.Join("testdata", "scenarios")

func TestScenarios_AllPass(t *testing.T) {
	scenarios, err := LoadDir(scenarioDir)
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Passed(), "failures: %v", result.Failures)
		})
	}
}

func TestScenarios_Golden(t *testing.T) {
	// Only scenarios whose draw does not depend on PCG output.
	names := []string{
		"two_swap",
		"single_participant",
		"empty_roster",
		"three_first_try",
		"three_restart",
		"three_exhausted",
		"four_scripted",
		"duplicate_names",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join(scenarioDir, name+".yaml"))
			require.NoError(t, err)
			_, err = RunWithGolden(t, s)
			require.NoError(t, err)
		})
	}
}

func TestRun_ReportsUnmetExpectations(t *testing.T) {
	s := &Scenario{
		Name:   "wrong",
		Roster: []core.Participant{{Name: "A", Email: "a@x.com"}, {Name: "B", Email: "b@x.com"}},
		Picks:  []int{0},
		Expect: Expect{Attempts: 3, Receivers: []string{"A", "B"}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Passed())
	assert.Len(t, result.Failures, 2)
	assert.Equal(t, "ok", result.Outcome())
}

func TestRun_UnexpectedError(t *testing.T) {
	s := &Scenario{Name: "lonely", Roster: []core.Participant{{Name: "A", Email: "a@x.com"}}}

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "unexpected error")
	assert.Equal(t, "INSUFFICIENT_PARTICIPANTS", result.Outcome())
}

func TestRun_WrongExpectedError(t *testing.T) {
	s := &Scenario{
		Name:   "mismatch",
		Roster: []core.Participant{{Name: "A", Email: "a@x.com"}},
		Expect: Expect{Error: "GENERATION_FAILED"},
	}

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "expected error GENERATION_FAILED, got INSUFFICIENT_PARTICIPANTS")
}

func TestRun_Nil(t *testing.T) {
	_, err := Run(nil)
	assert.Error(t, err)
}
