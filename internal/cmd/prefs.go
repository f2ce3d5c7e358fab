package cmd

import (
	"fmt"

	"github.com/harrison/uniqyou/internal/models"
	"github.com/spf13/cobra"
)

// NewPrefsCommand creates the 'uniqyou prefs' command
func NewPrefsCommand() *cobra.Command {
	var allowAIChat bool
	var darkMode string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change preferences",
		Long: `Show your preferences, or change them with flags.

Examples:
  uniqyou prefs
  uniqyou prefs --dark-mode dark
  uniqyou prefs --allow-ai-chat=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dark-mode") && !models.ValidDarkMode(darkMode) {
				return fmt.Errorf("invalid --dark-mode %q, must be one of: auto, light, dark", darkMode)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			prefs := a.store.LoadPreferences()
			changed := false
			if cmd.Flags().Changed("allow-ai-chat") {
				prefs.AllowAIChat = allowAIChat
				changed = true
			}
			if cmd.Flags().Changed("dark-mode") {
				prefs.DarkMode = darkMode
				changed = true
			}
			if changed {
				a.store.SavePreferences(prefs)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "allow-ai-chat: %t\n", prefs.AllowAIChat)
			fmt.Fprintf(out, "dark-mode:     %s\n", prefs.DarkMode)
			fmt.Fprintf(out, "consent:       %t\n", a.store.LoadConsent())
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowAIChat, "allow-ai-chat", false, "Share results with the chat assistant")
	cmd.Flags().StringVar(&darkMode, "dark-mode", "", "Color scheme (auto, light, dark)")

	return cmd
}
