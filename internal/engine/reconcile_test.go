package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/santa/internal/core"
)

func TestExisting_MatchesByName(t *testing.T) {
	roster := []core.Participant{
		{Name: "A", Email: "a@x.com", SecretChildName: "B"},
		{Name: "B", Email: "b@x.com", SecretChildName: "C"},
		{Name: "C", Email: "c@x.com", SecretChildName: "A"},
	}

	got := Existing(roster)
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Receiver.Name)
	assert.Equal(t, 1, got[0].ReceiverIndex)
	assert.Equal(t, "A", got[2].Receiver.Name)
	assert.NoError(t, core.ValidateDerangement(3, got))
}

func TestExisting_DropsUnmatched(t *testing.T) {
	roster := []core.Participant{
		{Name: "A", Email: "a@x.com", SecretChildName: "Nobody"},
		{Name: "B", Email: "b@x.com"},
		{Name: "C", Email: "c@x.com", SecretChildName: "B"},
	}

	got := Existing(roster)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].GiverIndex)
	assert.Equal(t, 1, got[0].ReceiverIndex)
}

func TestExisting_NeverSelf(t *testing.T) {
	roster := []core.Participant{
		{Name: "A", Email: "a@x.com", SecretChildName: "A"},
		{Name: "B", Email: "b@x.com"},
	}
	assert.Empty(t, Existing(roster))
}

func TestExisting_DuplicateNamesResolveToFirst(t *testing.T) {
	roster := []core.Participant{
		{Name: "Sam", Email: "sam1@x.com", SecretChildName: "Kim"},
		{Name: "Sam", Email: "sam2@x.com", SecretChildName: "Kim"},
		{Name: "Kim", Email: "kim@x.com", SecretChildName: "Sam"},
	}

	got := Existing(roster)
	require.Len(t, got, 3)
	assert.Equal(t, 0, got[2].ReceiverIndex, "first Sam wins")
	// Both Sams give to Kim, so the view is not a derangement.
	assert.Error(t, core.ValidateDerangement(3, got))

	assert.Equal(t, []string{"Sam"}, AmbiguousNames(roster))
}

func TestAmbiguousNames_None(t *testing.T) {
	assert.Empty(t, AmbiguousNames(makeRoster(4)))
}
