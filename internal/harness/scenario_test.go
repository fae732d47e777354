package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: ok_case
description: minimal
roster:
  - {name: A, email: a@x.com, secret_child_name: B}
  - {name: B, email: b@x.com}
seed: 9
expect:
  size: 2
`))
	require.NoError(t, err)
	assert.Equal(t, "ok_case", s.Name)
	require.Len(t, s.Roster, 2)
	assert.Equal(t, "B", s.Roster[0].SecretChildName)
	require.NotNil(t, s.Seed)
	assert.Equal(t, uint64(9), *s.Seed)
	assert.Equal(t, 2, s.Expect.Size)
}

func TestParseScenario_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown field",
			yaml: "name: x\ndescription: d\nroster: []\nexpect: {}\nshuffle: true\n",
		},
		{
			name: "empty participant name",
			yaml: "name: x\ndescription: d\nroster:\n  - {name: '', email: a@x.com}\nexpect: {}\n",
		},
		{
			name: "missing email",
			yaml: "name: x\ndescription: d\nroster:\n  - {name: A}\nexpect: {}\n",
		},
		{
			name: "negative pick",
			yaml: "name: x\ndescription: d\nroster: []\npicks: [-1]\nexpect: {}\n",
		},
		{
			name: "unknown error code",
			yaml: "name: x\ndescription: d\nroster: []\nexpect: {error: OOPS}\n",
		},
		{
			name: "bad name",
			yaml: "name: Has Spaces\ndescription: d\nroster: []\nexpect: {}\n",
		},
		{
			name: "missing description",
			yaml: "name: x\nroster: []\nexpect: {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
		})
	}
}

func TestParseScenario_MalformedYAML(t *testing.T) {
	_, err := ParseScenario([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
