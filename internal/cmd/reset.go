package cmd

import (
	"fmt"

	"github.com/harrison/uniqyou/internal/storage"
	"github.com/spf13/cobra"
)

// NewResetCommand creates the 'uniqyou reset' command
func NewResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all screening data stored on this device",
		Long: `Delete your answers, results, preferences and consent from this device.

Examples:
  # Asks for confirmation
  uniqyou reset

  # No confirmation
  uniqyou reset --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if !hasStoredData(a.store) {
				fmt.Fprintln(out, "Nothing to reset.")
				return nil
			}

			if !yes {
				fmt.Fprintln(out, "WARNING: This will delete ALL screening data stored on this device.")
				if !newLineReader(cmd.InOrStdin(), out).confirm("Continue?") {
					fmt.Fprintln(out, "Operation cancelled.")
					return nil
				}
			}

			s, err := a.session()
			if err != nil {
				return err
			}
			s.Reset()
			fmt.Fprintln(out, "All screening data deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func hasStoredData(store *storage.Storage) bool {
	for _, slot := range storage.AllSlots {
		if store.Exists(slot) {
			return true
		}
	}
	return false
}
