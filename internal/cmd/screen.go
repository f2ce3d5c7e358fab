package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/uniqyou/internal/display"
	"github.com/harrison/uniqyou/internal/models"
	"github.com/harrison/uniqyou/internal/session"
	"github.com/spf13/cobra"
)

const screenHelp = `Commands:
  1-N        choose an option (moves on to the next question)
  t <text>   add context to this question
  n / p      next / previous question
  g <n>      go to question n
  r          view results (last question only)
  q          save and quit`

// NewScreenCommand creates the 'uniqyou screen' command
func NewScreenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Take the screening questionnaire",
		Long: `Take the screening questionnaire one question at a time.

Answers are saved as you go, so you can quit and pick up later.
On the last question enter r to score your answers.

Examples:
  uniqyou screen
  uniqyou screen --leave-policy retain`,
		Args: cobra.NoArgs,
		RunE: runScreen,
	}

	cmd.Flags().String("leave-policy", "", "What happens to an answer when you move off its question (clear, retain)")

	return cmd
}

func runScreen(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	in := newLineReader(cmd.InOrStdin(), out)
	theme := a.theme(out)

	if !a.store.LoadConsent() {
		display.DisclaimerWarning().Display(out, theme.Enabled())
		if !in.confirm("I understand this screening is not a diagnosis. Continue?") {
			fmt.Fprintln(out, "Screening cancelled.")
			return nil
		}
		a.store.SaveConsent(true)
	}

	s, err := a.session()
	if err != nil {
		return err
	}

	if s.Total() == 0 {
		fmt.Fprintln(out, "The question catalog is empty.")
		return nil
	}
	if s.IsComplete() {
		fmt.Fprintln(out, "You have already completed the screening.")
		fmt.Fprintln(out, "Run `uniqyou results` to review it or `uniqyou reset` to start over.")
		return nil
	}

	return screenLoop(out, in, theme, s)
}

func screenLoop(out io.Writer, in *lineReader, theme *display.Theme, s *session.Controller) error {
	for {
		q, _ := s.CurrentQuestion()
		var current *models.Response
		if r, ok := s.CurrentResponse(); ok {
			current = &r
		}
		p := s.Progress()
		display.RenderQuestion(out, theme, q, p.Current, p.Total, current)

		line, ok := in.ask(fmt.Sprintf("\n[1-%d, t, n, p, g, r, q, ?] > ", len(q.Options)))
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(verb) {
		case "":
		case "q", "quit":
			fmt.Fprintln(out, "Progress saved. Run `uniqyou screen` to continue.")
			return nil
		case "?", "h", "help":
			fmt.Fprintln(out, screenHelp)
		case "t":
			if arg == "" {
				fmt.Fprintf(out, "%s: %s\n", display.TextPromptLabel(q), display.TextPromptPlaceholder(q))
				continue
			}
			s.Answer(q.ID, models.UnselectedValue, arg)
		case "n":
			switch {
			case !s.CanGoNext():
				fmt.Fprintln(out, "Answer this question first.")
			case s.IsLastStep():
				fmt.Fprintln(out, "This is the last question. Enter r to see your results.")
			default:
				move(s, s.Next)
			}
		case "p":
			if !s.CanGoPrevious() {
				fmt.Fprintln(out, "Already at the first question.")
				continue
			}
			move(s, s.Previous)
		case "g":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 || n > s.Total() {
				fmt.Fprintf(out, "Enter a question number between 1 and %d.\n", s.Total())
				continue
			}
			move(s, func() { s.GoTo(n - 1) })
		case "r":
			if !s.IsLastStep() || !s.CanGoNext() {
				fmt.Fprintln(out, "Answer the last question to see your results.")
				continue
			}
			results := s.Complete()
			fmt.Fprintln(out)
			display.RenderResults(out, theme, results)
			return nil
		default:
			n, err := strconv.Atoi(verb)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintln(out, "Unrecognized input. Enter ? for help.")
				continue
			}
			text := ""
			if current != nil {
				text = current.TextInput
			}
			s.Answer(q.ID, q.Options[n-1].Value, text)
			if !s.IsLastStep() {
				move(s, s.Next)
			}
		}
	}
}

// move runs a navigation step and, under the clear policy, records the
// answer of the question being left again so it survives the move.
func move(s *session.Controller, step func()) {
	r, answered := s.CurrentResponse()
	step()
	if answered && s.Policy() == session.ClearOnLeave {
		s.Answer(r.QuestionID, r.Value, r.TextInput)
	}
}
