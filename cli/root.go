// Package cli implements checkinctl, the offline companion of the server:
// guest list cleanup, format conversion and staff password hashing.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the checkinctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "checkinctl",
		Short:         "Guest list tools for CeibaCheckIn",
		Long:          "Normalize and convert guest lists (CSV / XLSX / XLS) and hash the staff password.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print record counts to stderr")

	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

// verbosef writes to stderr so stdout stays pipeable.
func (o *RootOptions) verbosef(w io.Writer, format string, args ...any) {
	if o.Verbose {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
