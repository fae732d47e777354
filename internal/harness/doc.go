// Package harness runs draw scenarios described in YAML.
//
// A scenario names a roster, a source of randomness (a seed or an explicit
// list of picks) and the expected outcome. Scenario files are checked
// against the CUE definition #Scenario before they are decoded, so typos
// and out-of-range values are reported with their path:
//
//	name: three_restart
//	description: first attempt dead-ends, second succeeds
//	roster:
//	  - {name: A, email: a@x.com}
//	  - {name: B, email: b@x.com}
//	  - {name: C, email: c@x.com}
//	picks: [0, 0, 1, 0, 0]
//	expect:
//	  attempts: 2
//	  receivers: [C, A, B]
//
// Every successful draw is also checked against core.ValidateDerangement,
// whatever the scenario expects.
//
// RunWithGolden compares the trace of a run against
// testdata/golden/<name>.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
