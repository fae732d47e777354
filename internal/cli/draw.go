package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/santa/internal/engine"
	"github.com/roach88/santa/internal/session"
	"github.com/roach88/santa/internal/sheet"
)

// DrawOptions holds flags for the draw command.
type DrawOptions struct {
	*RootOptions
	Output   string
	Seed     uint64
	Attempts int
}

// DrawView is the structured output of the draw command.
type DrawView struct {
	SetID   string           `json:"set_id" yaml:"set_id"`
	Output  string           `json:"output" yaml:"output"`
	Pairs   []Pair           `json:"pairs" yaml:"pairs"`
	Notices []session.Notice `json:"notices" yaml:"notices"`
}

// NewDrawCommand creates the draw command.
func NewDrawCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrawOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "draw <file>",
		Short: "Draw Secret Santa assignments and export them",
		Long: `Import a roster, draw a random assignment in which nobody gives to
themselves, and write the result as a spreadsheet with a single
"Assignments" sheet.

The exported file can be imported again; its receiver columns become
each participant's recorded secret child.

Example:
  santa draw employees.xlsx
  santa draw employees.xlsx -o draw.xlsx --seed 42`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var engineOpts []engine.Option
			if cmd.Flags().Changed("seed") {
				engineOpts = append(engineOpts, engine.WithSeed(opts.Seed))
			}
			engineOpts = append(engineOpts, engine.WithMaxAttempts(opts.Attempts))
			return runDraw(cmd.Context(), opts, args[0], cmd, engineOpts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", sheet.ExportFilename, "path of the exported workbook")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for a reproducible draw")
	cmd.Flags().IntVar(&opts.Attempts, "attempts", engine.DefaultMaxAttempts, "maximum generation attempts")

	return cmd
}

func runDraw(ctx context.Context, opts *DrawOptions, path string, cmd *cobra.Command, engineOpts []engine.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(opts.RootOptions, cmd)
	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := readRoster(path)
	if err != nil {
		return err
	}

	sess, closer, err := openSession(opts.RootOptions, logger, engineOpts...)
	if err != nil {
		return err
	}
	defer closer.Close()

	var notices []session.Notice
	for _, step := range []func() session.Notice{
		func() session.Notice { return sess.Import(ctx, data) },
		func() session.Notice { return sess.Generate(ctx) },
	} {
		n := step()
		notices = append(notices, n)
		if !n.OK() {
			_ = formatter.Failure(n)
			return noticeError(n)
		}
	}

	out, n := sess.Export()
	if !n.OK() {
		_ = formatter.Failure(n)
		return noticeError(n)
	}
	notices = append(notices, n)

	output := opts.Output
	if output == "" {
		output = sess.Filename()
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write workbook", err)
	}
	logger.Info("workbook written", "path", output, "set_id", sess.SetID())

	assignments := sess.Assignments()
	view := DrawView{
		SetID:   sess.SetID(),
		Output:  output,
		Pairs:   toPairs(assignments),
		Notices: notices,
	}
	return formatter.Report(view, func(w io.Writer) {
		for _, n := range notices {
			formatter.Notice(w, n)
		}
		fmt.Fprintln(w)
		formatter.Assignments(w, assignments)
		fmt.Fprintf(w, "\nWritten to %s\n", output)
	})
}
