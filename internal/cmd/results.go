package cmd

import (
	"fmt"

	"github.com/harrison/uniqyou/internal/display"
	"github.com/spf13/cobra"
)

// NewResultsCommand creates the 'uniqyou results' command
func NewResultsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the results of your last screening",
		Long: `Show per-domain scores, bands, summaries and tips from your last
completed screening.

Examples:
  uniqyou results
  uniqyou results --plain    # one line per domain, for sharing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.session()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			results := s.Results()
			if plain {
				if len(results) == 0 {
					return fmt.Errorf("no results yet: run `uniqyou screen` first")
				}
				fmt.Fprintln(out, display.ShareText(results))
				return nil
			}

			display.RenderResults(out, a.theme(out), results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print one \"Label: band (raw/max)\" line per domain")

	return cmd
}
