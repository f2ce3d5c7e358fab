package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for uniqyou
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniqyou",
		Short: "Private self-screening for learning and attention differences",
		Long: `uniqyou walks you through a short questionnaire covering ADHD, autism,
dyslexia and eleven other neurodevelopmental and wellbeing domains, then
scores each domain as low, moderate or elevated.

Everything is stored on this device. Results are not a diagnosis.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $UNIQYOU_HOME/config.yaml)")
	cmd.PersistentFlags().String("home", "", "uniqyou home directory (default: $UNIQYOU_HOME or ~/.uniqyou)")
	cmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("store", "", "Storage backend (file, sqlite, memory)")

	// Add subcommands
	cmd.AddCommand(NewScreenCommand())
	cmd.AddCommand(NewResultsCommand())
	cmd.AddCommand(NewResetCommand())
	cmd.AddCommand(NewConsentCommand())
	cmd.AddCommand(NewPrefsCommand())
	cmd.AddCommand(NewChatCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewMCPCommand())

	return cmd
}
