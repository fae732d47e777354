package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/santa/internal/engine"
	"github.com/roach88/santa/internal/roster"
	"github.com/roach88/santa/internal/session"
	"github.com/roach88/santa/internal/store"
)

// Roster store kinds accepted by --store.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// newLogger builds the command logger on stderr. Debug with --verbose.
func newLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	format := opts.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{Format: format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
}

// openSession builds a session over the store selected by --store. The
// returned closer releases the store.
func openSession(opts *RootOptions, logger *slog.Logger, engineOpts ...engine.Option) (*session.Session, io.Closer, error) {
	var (
		st     session.RosterStore
		closer io.Closer = nopCloser{}
	)

	switch opts.Store {
	case "", StoreMemory:
		st = roster.NewMemoryStore()
	case StoreSQLite:
		// Private in-memory database; the roster dies with the process.
		db, err := store.Open()
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to open roster store", err)
		}
		st, closer = db, db
	default:
		return nil, nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown store %q", opts.Store))
	}

	// The command logger overrides any logger in engineOpts.
	engineOpts = append(engineOpts, engine.WithLogger(logger))
	gen := engine.New(engineOpts...)
	logger.Debug("session opened", "store", opts.Store, "max_attempts", gen.MaxAttempts())

	return session.New(st, gen, session.WithLogger(logger)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// readRoster reads the roster file at path.
func readRoster(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read roster file", err)
	}
	return data, nil
}
