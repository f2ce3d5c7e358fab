package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/uniqyou/internal/assistant"
	"github.com/harrison/uniqyou/internal/display"
	"github.com/harrison/uniqyou/internal/models"
	"github.com/spf13/cobra"
)

// NewChatCommand creates the 'uniqyou chat' command
func NewChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the support assistant",
		Long: `Ask the support assistant about your results or about learning and
attention differences in general.

With a message the answer is printed and the command exits. Without one
an interactive chat starts; enter /clear to start over or /exit to leave.

The assistant only sees your results if you allowed it with
'uniqyou consent --allow-ai-chat'. When no model is reachable it answers
with general offline guidance.

Examples:
  uniqyou chat "How can I focus better at work?"
  uniqyou chat`,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	client, err := assistant.New(a.cfg.Assistant, a.catalog, a.log)
	if err != nil {
		return err
	}
	client.SetContext(assistant.Context{
		Results:     a.store.LoadResults(),
		Responses:   a.store.LoadResponses(),
		Preferences: a.store.LoadPreferences(),
	})

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if len(args) > 0 {
		printReply(out, client.Ask(ctx, strings.Join(args, " ")))
		return nil
	}

	online := client.Available(ctx)
	if !online {
		reason := "the assistant is disabled in config"
		if a.cfg.Assistant.Enabled {
			reason = "no model could be reached"
		}
		display.AssistantOfflineWarning(reason).Display(out, a.theme(out).Enabled())
	}

	welcome := assistant.WelcomeMessage(online, client.Context())
	transcript := assistant.NewTranscript(welcome)
	fmt.Fprintf(out, "\n%s\n", welcome)

	in := newLineReader(cmd.InOrStdin(), out)
	for {
		line, ok := in.ask("\nyou> ")
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "/exit", "/quit", "exit", "quit":
			return nil
		case "/clear":
			transcript.Clear(welcome)
			fmt.Fprintf(out, "%s\n", welcome)
			continue
		}

		transcript.Add(models.RoleUser, line)
		reply := client.Ask(ctx, line)
		transcript.Add(models.RoleAssistant, reply.Message)
		printReply(out, reply)
		a.log.LogTrace(fmt.Sprintf("Chat transcript has %d messages", transcript.Len()))
	}
}

func printReply(out io.Writer, reply assistant.Reply) {
	fmt.Fprintf(out, "\n%s\n", reply.Message)
	if len(reply.Suggestions) > 0 {
		fmt.Fprintln(out, "\nSuggestions:")
		for _, s := range reply.Suggestions {
			fmt.Fprintf(out, "  • %s\n", s)
		}
	}
	if len(reply.Resources) > 0 {
		fmt.Fprintln(out, "\nResources:")
		for _, r := range reply.Resources {
			fmt.Fprintf(out, "  • %s\n", r)
		}
	}
	if reply.Offline {
		fmt.Fprintln(out, "\n(offline reply)")
	}
}
