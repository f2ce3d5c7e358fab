package cmd

import (
	"fmt"

	"github.com/harrison/uniqyou/internal/display"
	"github.com/spf13/cobra"
)

// NewConsentCommand creates the 'uniqyou consent' command
func NewConsentCommand() *cobra.Command {
	var allowAIChat bool
	var revoke bool

	cmd := &cobra.Command{
		Use:   "consent",
		Short: "Accept the screening disclaimer and choose what the assistant may see",
		Long: `Record that you understand the screening is not a diagnosis.

With --allow-ai-chat your results and answers are shared with the chat
assistant. --revoke withdraws consent and stops sharing.

Examples:
  uniqyou consent
  uniqyou consent --allow-ai-chat
  uniqyou consent --revoke`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("consent takes no arguments")
			}
			if revoke && allowAIChat {
				return fmt.Errorf("cannot combine --revoke with --allow-ai-chat")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			prefs := a.store.LoadPreferences()

			if revoke {
				prefs.AllowAIChat = false
				a.store.SavePreferences(prefs)
				a.store.SaveConsent(false)
				fmt.Fprintln(out, "Consent withdrawn. Results will not be shared with the assistant.")
				return nil
			}

			display.DisclaimerWarning().Display(out, a.theme(out).Enabled())
			prefs.AllowAIChat = allowAIChat
			a.store.SavePreferences(prefs)
			a.store.SaveConsent(true)

			fmt.Fprintln(out, "Consent recorded.")
			if prefs.AllowAIChat {
				fmt.Fprintln(out, "Your results will be shared with the chat assistant.")
			} else {
				fmt.Fprintln(out, "Your results will not be shared with the chat assistant.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowAIChat, "allow-ai-chat", false, "Share results with the chat assistant")
	cmd.Flags().BoolVar(&revoke, "revoke", false, "Withdraw consent and stop sharing")

	return cmd
}
