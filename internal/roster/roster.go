// Package roster holds the participant list for one session in memory.
//
// MemoryStore is not safe for concurrent writers. The session that owns it
// is the single writer; readers receive copies.
package roster

import (
	"context"
	"slices"

	"github.com/roach88/santa/internal/core"
)

// MemoryStore is the in-process participant store.
type MemoryStore struct {
	participants []core.Participant
}

// NewMemoryStore returns a store seeded with a copy of initial.
func NewMemoryStore(initial ...core.Participant) *MemoryStore {
	return &MemoryStore{participants: slices.Clone(initial)}
}

// Get returns a copy of the roster in order.
func (s *MemoryStore) Get(_ context.Context) ([]core.Participant, error) {
	return slices.Clone(s.participants), nil
}

// Replace swaps the whole roster. The previous contents are discarded.
func (s *MemoryStore) Replace(_ context.Context, participants []core.Participant) error {
	s.participants = slices.Clone(participants)
	return nil
}

// Add appends p after validating its required fields.
func (s *MemoryStore) Add(_ context.Context, p core.Participant) error {
	if err := core.ValidateParticipant(p); err != nil {
		return err
	}
	s.participants = append(s.participants, p)
	return nil
}

// Remove deletes the participant at index.
func (s *MemoryStore) Remove(_ context.Context, index int) error {
	if index < 0 || index >= len(s.participants) {
		return core.NewInvalidIndexError(index, len(s.participants))
	}
	s.participants = slices.Delete(s.participants, index, index+1)
	return nil
}

// Len reports the roster size.
func (s *MemoryStore) Len() int {
	return len(s.participants)
}
