package core

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes failures reported by the importer, engine and exporter.
type ErrorCode string

const (
	// ErrCodeImport indicates the input could not be decoded as a spreadsheet.
	ErrCodeImport ErrorCode = "IMPORT_FAILED"

	// ErrCodeEmptyResult indicates no row survived required-field filtering.
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"

	// ErrCodeInsufficientParticipants indicates a roster smaller than two.
	ErrCodeInsufficientParticipants ErrorCode = "INSUFFICIENT_PARTICIPANTS"

	// ErrCodeGenerationFailed indicates the attempt bound was exhausted.
	ErrCodeGenerationFailed ErrorCode = "GENERATION_FAILED"

	// ErrCodeNothingToExport indicates an empty assignment set was exported.
	ErrCodeNothingToExport ErrorCode = "NOTHING_TO_EXPORT"

	// ErrCodeInvalidParticipant indicates a manual add without name or email.
	ErrCodeInvalidParticipant ErrorCode = "INVALID_PARTICIPANT"

	// ErrCodeInvalidIndex indicates a remove outside the roster bounds.
	ErrCodeInvalidIndex ErrorCode = "INVALID_INDEX"

	// ErrCodeNotDerangement indicates a set that is not a valid derangement.
	ErrCodeNotDerangement ErrorCode = "NOT_DERANGEMENT"
)

// Error is the single error type of the taxonomy.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsImportError and the predicates below match on the error code anywhere
// in the chain.
func IsImportError(err error) bool {
	return CodeOf(err) == ErrCodeImport
}

func IsEmptyResult(err error) bool {
	return CodeOf(err) == ErrCodeEmptyResult
}

func IsInsufficientParticipants(err error) bool {
	return CodeOf(err) == ErrCodeInsufficientParticipants
}

func IsGenerationFailed(err error) bool {
	return CodeOf(err) == ErrCodeGenerationFailed
}

func IsNothingToExport(err error) bool {
	return CodeOf(err) == ErrCodeNothingToExport
}

func IsInvalidParticipant(err error) bool {
	return CodeOf(err) == ErrCodeInvalidParticipant
}

func IsInvalidIndex(err error) bool {
	return CodeOf(err) == ErrCodeInvalidIndex
}

func IsNotDerangement(err error) bool {
	return CodeOf(err) == ErrCodeNotDerangement
}

// NewImportError wraps a decoding failure.
func NewImportError(err error) *Error {
	return &Error{Code: ErrCodeImport, Message: "input is not a readable spreadsheet", Err: err}
}

// NewEmptyResultError reports how many rows were read before filtering.
func NewEmptyResultError(rows int) *Error {
	return &Error{
		Code:    ErrCodeEmptyResult,
		Message: fmt.Sprintf("no valid participants among %d rows", rows),
	}
}

func NewInsufficientParticipantsError(n int) *Error {
	return &Error{
		Code:    ErrCodeInsufficientParticipants,
		Message: fmt.Sprintf("need at least 2 participants, have %d", n),
	}
}

func NewGenerationFailedError(attempts int) *Error {
	return &Error{
		Code:    ErrCodeGenerationFailed,
		Message: fmt.Sprintf("no valid assignment after %d attempts", attempts),
	}
}

func NewNothingToExportError() *Error {
	return &Error{Code: ErrCodeNothingToExport, Message: "assignment set is empty"}
}

func NewInvalidParticipantError(err error) *Error {
	return &Error{Code: ErrCodeInvalidParticipant, Message: "name and email are required", Err: err}
}

func NewInvalidIndexError(index, size int) *Error {
	return &Error{
		Code:    ErrCodeInvalidIndex,
		Message: fmt.Sprintf("index %d out of range [0,%d)", index, size),
	}
}

func newNotDerangementError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeNotDerangement, Message: fmt.Sprintf(format, args...)}
}
