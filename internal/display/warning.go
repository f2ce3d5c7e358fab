package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Details    []string // Numbered detail lines (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when colored is true
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, d := range w.Details {
		fmt.Fprintf(&b, "      %d. %s\n", i+1, d)
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	c := color.New(color.FgYellow)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprint(out, c.Sprint(b.String()))
}

// DisclaimerWarning is shown before a screening starts and with results.
func DisclaimerWarning() Warning {
	return Warning{
		Title:      "Important Disclaimer",
		Message:    "This screening is for educational purposes only and is not a medical diagnosis.",
		Suggestion: "Always consult qualified professionals for medical advice.",
	}
}

// AssistantOfflineWarning explains that replies are canned.
func AssistantOfflineWarning(reason string) Warning {
	return Warning{
		Title:      "Assistant is offline",
		Message:    reason,
		Suggestion: "Replies are general guidance. Set an API key to enable personalized answers.",
	}
}
