// Package session is the boundary between the draw and whatever presents it.
//
// A Session owns a roster store, an assignment generator, and the current
// assignment list. Every operation returns a Notice carrying a severity and
// a message fit for display; errors never escape as panics.
//
// A Session has a single writer. It does no locking of its own.
package session

//go:generate mockgen -source=session.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/engine"
	"github.com/roach88/santa/internal/sheet"
)

// User-facing messages.
const (
	MsgNoFile             = "No file selected"
	MsgImported           = "Successfully imported %d participants"
	MsgEmptyImport        = "No valid participants found in the Excel file. Please ensure it has Employee_Name and Employee_EmailID columns."
	MsgImportFailed       = "Error processing Excel file: %s"
	MsgAdded              = "Added %s"
	MsgInvalidParticipant = "Name and email are required"
	MsgRemoved            = "Removed %s"
	MsgInvalidIndex       = "No participant at position %d"
	MsgInsufficient       = "Need at least 2 participants to generate assignments"
	MsgGenerated          = "Secret Santa assignments generated successfully!"
	MsgGenerationFailed   = "Failed to generate valid assignments. Please try again."
	MsgGenerationError    = "An error occurred while generating assignments"
	MsgNothingToExport    = "No assignments to export"
	MsgExported           = "Assignments exported successfully!"
	MsgExportFailed       = "Error exporting assignments"
	MsgRosterUnavailable  = "Could not read the participant list"
)

// RosterStore holds the participants of a session.
type RosterStore interface {
	Get(ctx context.Context) ([]core.Participant, error)
	Replace(ctx context.Context, participants []core.Participant) error
	Add(ctx context.Context, p core.Participant) error
	Remove(ctx context.Context, index int) error
}

// Generator draws an assignment set for a roster.
type Generator interface {
	Generate(roster []core.Participant) (*core.AssignmentSet, error)
}

// Notice is the outcome of a session operation.
type Notice struct {
	Severity core.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Err      error         `json:"-" yaml:"-"`
}

// OK reports whether the notice is a success.
func (n Notice) OK() bool {
	return n.Severity == core.SeveritySuccess
}

func success(format string, args ...any) Notice {
	return Notice{Severity: core.SeveritySuccess, Message: fmt.Sprintf(format, args...)}
}

func failure(err error, format string, args ...any) Notice {
	return Notice{Severity: core.SeverityError, Message: fmt.Sprintf(format, args...), Err: err}
}

// Session coordinates import, generation and export for one roster.
type Session struct {
	store       RosterStore
	gen         Generator
	logger      *slog.Logger
	assignments []core.Assignment
	setID       string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session over store and gen.
func New(store RosterStore, gen Generator, opts ...Option) *Session {
	s := &Session{
		store:  store,
		gen:    gen,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Roster returns the current participants.
func (s *Session) Roster(ctx context.Context) ([]core.Participant, error) {
	return s.store.Get(ctx)
}

// Assignments returns a copy of the current assignment list. It is either
// the last generated set or, after a roster change, the assignments
// recorded in the roster itself.
func (s *Session) Assignments() []core.Assignment {
	return slices.Clone(s.assignments)
}

// SetID is the ID of the generated set currently shown, or "" when the
// assignments were reconstructed from the roster.
func (s *Session) SetID() string {
	return s.setID
}

// Import parses data and, if at least one participant is valid, replaces
// the roster with it. On any failure the roster is left unchanged.
func (s *Session) Import(ctx context.Context, data []byte) Notice {
	if len(data) == 0 {
		return failure(core.NewImportError(errors.New("no data")), MsgNoFile)
	}

	participants, err := sheet.Parse(data, sheet.WithLogger(s.logger))
	switch {
	case core.IsEmptyResult(err):
		s.logger.Info("import rejected", "reason", "no valid rows")
		return failure(err, MsgEmptyImport)
	case err != nil:
		s.logger.Warn("import failed", "error", err)
		return failure(err, MsgImportFailed, cause(err))
	}

	if err := s.store.Replace(ctx, participants); err != nil {
		s.logger.Error("roster replace failed", "error", err)
		return failure(err, MsgImportFailed, err.Error())
	}

	s.logger.Info("roster imported", "participants", len(participants))
	s.refresh(ctx)
	return success(MsgImported, len(participants))
}

// Add appends a participant with empty secret-child fields.
func (s *Session) Add(ctx context.Context, name, email string) Notice {
	p := core.Participant{Name: core.Normalize(name), Email: core.Normalize(email)}
	if err := s.store.Add(ctx, p); err != nil {
		if core.IsInvalidParticipant(err) {
			return failure(err, MsgInvalidParticipant)
		}
		return failure(err, MsgRosterUnavailable)
	}

	s.refresh(ctx)
	return success(MsgAdded, p.Name)
}

// Remove deletes the participant at index.
func (s *Session) Remove(ctx context.Context, index int) Notice {
	roster, err := s.store.Get(ctx)
	if err != nil {
		return failure(err, MsgRosterUnavailable)
	}
	if index < 0 || index >= len(roster) {
		return failure(core.NewInvalidIndexError(index, len(roster)), MsgInvalidIndex, index)
	}

	if err := s.store.Remove(ctx, index); err != nil {
		if core.IsInvalidIndex(err) {
			return failure(err, MsgInvalidIndex, index)
		}
		return failure(err, MsgRosterUnavailable)
	}

	s.refresh(ctx)
	return success(MsgRemoved, roster[index].Name)
}

// Generate draws a new assignment set, replacing the current one on
// success. On failure the current assignments are kept.
func (s *Session) Generate(ctx context.Context) Notice {
	roster, err := s.store.Get(ctx)
	if err != nil {
		return failure(err, MsgRosterUnavailable)
	}

	set, err := s.gen.Generate(roster)
	switch {
	case core.IsInsufficientParticipants(err):
		return failure(err, MsgInsufficient)
	case core.IsGenerationFailed(err):
		return failure(err, MsgGenerationFailed)
	case err != nil:
		s.logger.Error("generation error", "error", err)
		return failure(err, MsgGenerationError)
	}

	s.assignments = set.Assignments
	s.setID = set.ID
	return success(MsgGenerated)
}

// Export renders the current assignments as a workbook named
// sheet.ExportFilename. The data is nil unless the notice is a success.
func (s *Session) Export() ([]byte, Notice) {
	data, err := sheet.Export(s.assignments)
	switch {
	case core.IsNothingToExport(err):
		return nil, failure(err, MsgNothingToExport)
	case err != nil:
		s.logger.Error("export failed", "error", err)
		return nil, failure(err, MsgExportFailed)
	}

	s.logger.Info("assignments exported", "rows", len(s.assignments), "bytes", len(data))
	return data, success(MsgExported)
}

// Filename is the fixed download name of Export's output.
func (s *Session) Filename() string {
	return sheet.ExportFilename
}

// refresh recomputes the assignments recorded in the roster. A non-empty
// result replaces the current list; an empty one leaves it alone.
func (s *Session) refresh(ctx context.Context) {
	roster, err := s.store.Get(ctx)
	if err != nil {
		s.logger.Warn("could not reload roster", "error", err)
		return
	}

	if dups := engine.AmbiguousNames(roster); len(dups) > 0 {
		s.logger.Debug("duplicate names resolve to first occurrence", "names", strings.Join(dups, ", "))
	}

	existing := engine.Existing(roster)
	if len(existing) == 0 {
		return
	}
	s.assignments = existing
	s.setID = ""
	s.logger.Debug("loaded existing assignments", "count", len(existing))
}

// cause returns the innermost message of err for display.
func cause(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
