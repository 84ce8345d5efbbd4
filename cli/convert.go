package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"CeibaCheckIn/services"

	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a guest list between CSV and XLSX",
		Long: `Read <in> (.csv, .txt, .xlsx, .xlsm or .xls) and write <out>.
The output format is taken from the extension of <out> (.csv or .xlsx).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			guests, err := readGuests(in)
			if err != nil {
				return err
			}

			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			if format != services.FormatCSV && format != services.FormatXLSX {
				return fmt.Errorf("%s: %w", out, services.ErrUnsupportedFormat)
			}
			f, err := services.Render(guests, format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, f.Data, 0o644); err != nil {
				return err
			}
			rootOpts.verbosef(cmd.ErrOrStderr(), "%d guests written to %s", len(guests), out)
			return nil
		},
	}
}
