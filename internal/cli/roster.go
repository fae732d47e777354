package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/session"
)

// RosterOptions holds flags for the roster command.
type RosterOptions struct {
	*RootOptions
	Add    []string // "Name=email" entries appended after import
	Remove []int    // 1-based positions removed after import
}

// RosterView is the structured output of the roster command.
type RosterView struct {
	Participants []core.Participant `json:"participants" yaml:"participants"`
	Existing     []Pair             `json:"existing,omitempty" yaml:"existing,omitempty"`
	Notices      []session.Notice   `json:"notices" yaml:"notices"`
}

// Pair is a giver/receiver pair for output.
type Pair struct {
	Giver         string `json:"giver" yaml:"giver"`
	GiverEmail    string `json:"giver_email" yaml:"giver_email"`
	Receiver      string `json:"receiver" yaml:"receiver"`
	ReceiverEmail string `json:"receiver_email" yaml:"receiver_email"`
}

func toPairs(assignments []core.Assignment) []Pair {
	return lo.Map(assignments, func(a core.Assignment, _ int) Pair {
		return Pair{
			Giver:         a.Giver.Name,
			GiverEmail:    a.Giver.Email,
			Receiver:      a.Receiver.Name,
			ReceiverEmail: a.Receiver.Email,
		}
	})
}

// NewRosterCommand creates the roster command.
func NewRosterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RosterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "roster <file>",
		Short: "Import a roster and show its participants",
		Long: `Import participants from a spreadsheet and print the roster together
with any assignments already recorded in its Secret_Child columns.

Participants can be removed by position and added by name and email
after the import.

Example:
  santa roster employees.xlsx
  santa roster employees.xlsx --remove 3 --add "Dana=dana@example.com"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Add, "add", nil, `participant to add as "Name=email" (repeatable)`)
	cmd.Flags().IntSliceVar(&opts.Remove, "remove", nil, "1-based position to remove (repeatable)")

	return cmd
}

func runRoster(ctx context.Context, opts *RosterOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(opts.RootOptions, cmd)
	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := readRoster(path)
	if err != nil {
		return err
	}

	sess, closer, err := openSession(opts.RootOptions, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	notices := []session.Notice{sess.Import(ctx, data)}
	if !notices[0].OK() {
		_ = formatter.Failure(notices[0])
		return noticeError(notices[0])
	}

	// Highest position first so earlier removals do not shift later ones.
	positions := lo.Uniq(opts.Remove)
	slices.Sort(positions)
	slices.Reverse(positions)
	for _, pos := range positions {
		n := sess.Remove(ctx, pos-1)
		notices = append(notices, n)
		if !n.OK() {
			_ = formatter.Failure(n)
			return noticeError(n)
		}
	}

	for _, entry := range opts.Add {
		name, email, _ := strings.Cut(entry, "=")
		n := sess.Add(ctx, name, email)
		notices = append(notices, n)
		if !n.OK() {
			_ = formatter.Failure(n)
			return noticeError(n)
		}
	}

	participants, err := sess.Roster(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, session.MsgRosterUnavailable, err)
	}
	existing := sess.Assignments()

	view := RosterView{
		Participants: participants,
		Existing:     toPairs(existing),
		Notices:      notices,
	}
	return formatter.Report(view, func(w io.Writer) {
		for _, n := range notices {
			formatter.Notice(w, n)
		}
		fmt.Fprintln(w)
		formatter.Participants(w, participants)
		if len(existing) > 0 {
			fmt.Fprintf(w, "\nRecorded assignments (%d):\n", len(existing))
			formatter.Assignments(w, existing)
		}
	})
}
