package core

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateParticipant checks the required fields of p.
func ValidateParticipant(p Participant) error {
	if err := validate.Struct(p); err != nil {
		return NewInvalidParticipantError(err)
	}
	return nil
}

// ValidateDerangement checks that set is a derangement of a roster of size n:
// exactly n assignments, every position used once as giver and once as
// receiver, and no position assigned to itself.
func ValidateDerangement(n int, set []Assignment) error {
	if len(set) != n {
		return newNotDerangementError("have %d assignments for %d participants", len(set), n)
	}

	gives := make([]bool, n)
	receives := make([]bool, n)
	for i, a := range set {
		if a.GiverIndex < 0 || a.GiverIndex >= n {
			return newNotDerangementError("assignment %d: giver index %d out of range", i, a.GiverIndex)
		}
		if a.ReceiverIndex < 0 || a.ReceiverIndex >= n {
			return newNotDerangementError("assignment %d: receiver index %d out of range", i, a.ReceiverIndex)
		}
		if a.GiverIndex == a.ReceiverIndex {
			return newNotDerangementError("assignment %d: %q is assigned to themselves", i, a.Giver.Name)
		}
		if gives[a.GiverIndex] {
			return newNotDerangementError("assignment %d: %q gives twice", i, a.Giver.Name)
		}
		if receives[a.ReceiverIndex] {
			return newNotDerangementError("assignment %d: %q receives twice", i, a.Receiver.Name)
		}
		gives[a.GiverIndex] = true
		receives[a.ReceiverIndex] = true
	}

	return nil
}
