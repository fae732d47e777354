package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people(names ...string) []Participant {
	out := make([]Participant, len(names))
	for i, n := range names {
		out[i] = Participant{Name: n, Email: n + "@x.com"}
	}
	return out
}

func pairs(roster []Participant, idx ...int) []Assignment {
	out := make([]Assignment, 0, len(idx)/2)
	for i := 0; i+1 < len(idx); i += 2 {
		out = append(out, Assignment{
			Giver:         roster[idx[i]],
			Receiver:      roster[idx[i+1]],
			GiverIndex:    idx[i],
			ReceiverIndex: idx[i+1],
		})
	}
	return out
}

func TestValidateParticipant(t *testing.T) {
	require.NoError(t, ValidateParticipant(Participant{Name: "A", Email: "a@x.com"}))

	err := ValidateParticipant(Participant{Name: "", Email: "a@x.com"})
	require.Error(t, err)
	assert.True(t, IsInvalidParticipant(err))

	err = ValidateParticipant(Participant{Name: "A"})
	assert.True(t, IsInvalidParticipant(err))
}

func TestValidateDerangement(t *testing.T) {
	roster := people("A", "B", "C")

	tests := []struct {
		name    string
		set     []Assignment
		wantErr string
	}{
		{"cycle", pairs(roster, 0, 1, 1, 2, 2, 0), ""},
		{"other cycle", pairs(roster, 0, 2, 1, 0, 2, 1), ""},
		{"fixed point", pairs(roster, 0, 0, 1, 2, 2, 1), "assigned to themselves"},
		{"too short", pairs(roster, 0, 1, 1, 0), "have 2 assignments for 3"},
		{"double receiver", pairs(roster, 0, 1, 1, 2, 2, 1), "receives twice"},
		{"double giver", pairs(roster, 0, 1, 0, 2, 2, 0), "gives twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDerangement(len(roster), tt.set)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsNotDerangement(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDerangement_OutOfRange(t *testing.T) {
	roster := people("A", "B")
	set := []Assignment{
		{Giver: roster[0], Receiver: roster[1], GiverIndex: 0, ReceiverIndex: 1},
		{Giver: roster[1], Receiver: roster[0], GiverIndex: 1, ReceiverIndex: 5},
	}
	err := ValidateDerangement(2, set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receiver index 5 out of range")
}

func TestValidateDerangement_DuplicateNames(t *testing.T) {
	// Identity is positional, so two "Sam"s may give to each other.
	roster := people("Sam", "Sam")
	assert.NoError(t, ValidateDerangement(2, pairs(roster, 0, 1, 1, 0)))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Zo\u00eb", Normalize("  Zoe\u0308 "))
	assert.Equal(t, "a@x.com", Normalize("a@x.com\t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestAssignmentSet_Len(t *testing.T) {
	var s *AssignmentSet
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, (&AssignmentSet{Assignments: pairs(people("A", "B"), 0, 1, 1, 0)}).Len())
}
