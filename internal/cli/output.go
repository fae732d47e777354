package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/session"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The operation reported an error notice
	ExitCommandError = 2 // Command error (unreadable path, bad flags, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set when the command already printed the failure.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// noticeError converts a failed notice that has already been printed.
func noticeError(n session.Notice) *ExitError {
	return &ExitError{Code: ExitFailure, Message: n.Message, Err: n.Err, Reported: true}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already printed by the command.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// CLIResponse is the structured response format for json and yaml output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Details any    `json:"details,omitempty" yaml:"details,omitempty"`
}

func (f *OutputFormatter) structured() bool {
	return f.Format == "json" || f.Format == "yaml"
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		defer enc.Close()
		return enc.Encode(resp)
	}
	return json.NewEncoder(f.Writer).Encode(resp)
}

// Report writes data as a structured response, or calls text for the
// human-readable form.
func (f *OutputFormatter) Report(data any, text func(w io.Writer)) error {
	if f.structured() {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}
	text(f.Writer)
	return nil
}

// Failure writes a failed notice.
func (f *OutputFormatter) Failure(n session.Notice) error {
	code := string(core.CodeOf(n.Err))
	if code == "" {
		code = "FAILED"
	}

	if f.structured() {
		var details any
		if f.Verbose && n.Err != nil {
			details = n.Err.Error()
		}
		return f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: n.Message, Details: details},
		})
	}

	fmt.Fprintln(f.Writer, color.Red.Sprintf("✗ %s", n.Message))
	if f.Verbose && n.Err != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", n.Err)
	}
	return nil
}

// Notice writes a notice line in text mode.
func (f *OutputFormatter) Notice(w io.Writer, n session.Notice) {
	if n.OK() {
		fmt.Fprintln(w, color.Green.Sprintf("✓ %s", n.Message))
		return
	}
	fmt.Fprintln(w, color.Red.Sprintf("✗ %s", n.Message))
}

// Participants renders a roster table.
func (f *OutputFormatter) Participants(w io.Writer, roster []core.Participant) {
	table := newTable(w, "#", "Name", "Email", "Secret Child")
	for i, p := range roster {
		table.Append([]string{strconv.Itoa(i + 1), p.Name, p.Email, p.SecretChildName})
	}
	table.Render()
}

// Assignments renders a giver/receiver table.
func (f *OutputFormatter) Assignments(w io.Writer, assignments []core.Assignment) {
	table := newTable(w, "Giver", "Giver Email", "Receiver", "Receiver Email")
	for _, a := range assignments {
		table.Append([]string{a.Giver.Name, a.Giver.Email, a.Receiver.Name, a.Receiver.Email})
	}
	table.Render()
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	return table
}
