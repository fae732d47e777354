package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Store   string // "memory" | "sqlite"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// ValidStores defines the allowed roster stores.
var ValidStores = []string{StoreMemory, StoreSQLite}

// NewRootCommand creates the root command for the santa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "santa",
		Short: "Secret Santa draws from a spreadsheet roster",
		Long: `Import a roster of participants from a spreadsheet, draw a Secret Santa
assignment in which nobody gives to themselves, and export the result as
a spreadsheet that can be imported again.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(ValidStores, opts.Store) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid store %q: must be one of %v", opts.Store, ValidStores))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", StoreMemory, "roster store for this session (memory|sqlite)")

	cmd.AddCommand(NewRosterCommand(opts))
	cmd.AddCommand(NewDrawCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}
