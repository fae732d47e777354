package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file form of a run.
type TraceSnapshot struct {
	ScenarioName string      `json:"scenario_name"`
	SetID        string      `json:"set_id,omitempty"`
	Outcome      string      `json:"outcome"`
	Attempts     int         `json:"attempts,omitempty"`
	Pairs        []TracePair `json:"pairs,omitempty"`
}

// TracePair is one assignment in a trace.
type TracePair struct {
	Giver         string `json:"giver"`
	GiverEmail    string `json:"giver_email"`
	Receiver      string `json:"receiver"`
	ReceiverEmail string `json:"receiver_email"`
}

// Snapshot builds the trace of a result.
func Snapshot(r *Result) TraceSnapshot {
	snap := TraceSnapshot{ScenarioName: r.Scenario, Outcome: r.Outcome()}
	if r.Set == nil {
		return snap
	}

	snap.SetID = r.Set.ID
	snap.Attempts = r.Set.Attempts
	for _, a := range r.Set.Assignments {
		snap.Pairs = append(snap.Pairs, TracePair{
			Giver:         a.Giver.Name,
			GiverEmail:    a.Giver.Email,
			Receiver:      a.Receiver.Name,
			ReceiverEmail: a.Receiver.Email,
		})
	}
	return snap
}

// MarshalTrace renders a snapshot as indented JSON with a trailing newline.
func MarshalTrace(snap TraceSnapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden runs a scenario and compares its trace with
// testdata/golden/{scenario.Name}.golden.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := MarshalTrace(Snapshot(result))
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
