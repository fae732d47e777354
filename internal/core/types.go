package core

// Participant is one roster entry.
//
// Name and Email are required. SecretChildName and SecretChildEmail hold a
// previously recorded receiver, typically read back from an exported sheet.
type Participant struct {
	Name             string `json:"name" yaml:"name" validate:"required"`
	Email            string `json:"email" yaml:"email" validate:"required"`
	SecretChildName  string `json:"secret_child_name,omitempty" yaml:"secret_child_name,omitempty"`
	SecretChildEmail string `json:"secret_child_email,omitempty" yaml:"secret_child_email,omitempty"`
}

// Assignment pairs a giver with a receiver.
//
// GiverIndex and ReceiverIndex are positions in the roster the assignment
// was built from; they carry participant identity.
type Assignment struct {
	Giver         Participant `json:"giver" yaml:"giver"`
	Receiver      Participant `json:"receiver" yaml:"receiver"`
	GiverIndex    int         `json:"giver_index" yaml:"giver_index"`
	ReceiverIndex int         `json:"receiver_index" yaml:"receiver_index"`
}

// AssignmentSet is the result of one successful generation.
// It is never patched; regeneration produces a new set.
type AssignmentSet struct {
	ID          string       `json:"id" yaml:"id"`
	Attempts    int          `json:"attempts" yaml:"attempts"`
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
}

// Len returns the number of assignments, tolerating a nil set.
func (s *AssignmentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Assignments)
}

// Severity classifies a user-visible notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)
