package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/engine"
	"github.com/roach88/santa/internal/session"
)

// CheckView is the structured output of the check command.
type CheckView struct {
	Participants int    `json:"participants" yaml:"participants"`
	Recorded     int    `json:"recorded" yaml:"recorded"`
	Valid        bool   `json:"valid" yaml:"valid"`
	Pairs        []Pair `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify the assignments recorded in a roster",
		Long: `Import a roster (typically a previously exported workbook), rebuild the
assignments recorded in its Secret_Child columns, and verify that every
participant gives exactly once, receives exactly once, and never to
themselves.

Exit codes:
  0 - recorded assignments form a valid draw
  1 - import failed or the recorded assignments are not a valid draw
  2 - command error (unreadable path, bad flags)

Example:
  santa check Secret-Santa-Assignments.xlsx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(ctx context.Context, opts *RootOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(opts, cmd)
	formatter := newFormatter(opts, cmd)

	data, err := readRoster(path)
	if err != nil {
		return err
	}

	sess, closer, err := openSession(opts, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	if n := sess.Import(ctx, data); !n.OK() {
		_ = formatter.Failure(n)
		return noticeError(n)
	}

	roster, err := sess.Roster(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, session.MsgRosterUnavailable, err)
	}
	recorded := engine.Existing(roster)

	if err := core.ValidateDerangement(len(roster), recorded); err != nil {
		logger.Debug("recorded assignments rejected", "error", err)
		n := session.Notice{Severity: core.SeverityError, Message: err.Error(), Err: err}
		_ = formatter.Failure(n)
		return noticeError(n)
	}

	view := CheckView{
		Participants: len(roster),
		Recorded:     len(recorded),
		Valid:        true,
		Pairs:        toPairs(recorded),
	}
	return formatter.Report(view, func(w io.Writer) {
		formatter.Notice(w, session.Notice{
			Severity: core.SeveritySuccess,
			Message:  fmt.Sprintf("%d recorded assignments form a valid draw", len(recorded)),
		})
	})
}
