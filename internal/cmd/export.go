package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/harrison/uniqyou/internal/models"
	"github.com/spf13/cobra"
)

// exportDocument is the JSON shape written by 'uniqyou export'.
type exportDocument struct {
	ExportedAt  time.Time                `json:"exportedAt"`
	Consent     bool                     `json:"consent"`
	Preferences models.Preferences       `json:"preferences"`
	Responses   []models.Response        `json:"responses"`
	Results     []models.ScreeningResult `json:"results"`
}

// NewExportCommand creates the 'uniqyou export' command
func NewExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your screening data as JSON",
		Long: `Export answers, results and preferences as a single JSON document.
If no output file is specified, data is written to stdout.

Examples:
  uniqyou export
  uniqyou export -o my-screening.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := exportDocument{
				ExportedAt:  time.Now().UTC(),
				Consent:     a.store.LoadConsent(),
				Preferences: a.store.LoadPreferences(),
				Responses:   a.store.LoadResponses(),
				Results:     a.store.LoadResults(),
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode export: %w", err)
			}
			data = append(data, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d responses and %d results to %s\n",
				len(doc.Responses), len(doc.Results), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (stdout if not specified)")

	return cmd
}
