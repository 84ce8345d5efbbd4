package cli

import (
	"fmt"
	"os"

	"CeibaCheckIn/core"
	"CeibaCheckIn/models"
	"CeibaCheckIn/services"

	"github.com/spf13/cobra"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print a guest list as canonical CSV",
		Long: `Decode a CSV, XLSX or XLS guest list with the same rules as the server import
(header detection, title-casing, "-" as empty) and print canonical CSV to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guests, err := readGuests(args[0])
			if err != nil {
				return err
			}
			rootOpts.verbosef(cmd.ErrOrStderr(), "%d guests read from %s", len(guests), args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), core.Encode(guests))
			return err
		},
	}
}

func readGuests(path string) ([]models.Guest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	guests, err := services.DecodeFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return guests, nil
}
