package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/uniqyou/internal/models"
)

// Default text prompt shown when a question defines none
const (
	DefaultTextPromptLabel       = "Additional context (optional)"
	DefaultTextPromptPlaceholder = "Add any additional details, examples, or context that might help..."
)

var bandLabels = map[models.Band]string{
	models.BandLow:      "Low",
	models.BandModerate: "Moderate",
	models.BandElevated: "Elevated",
}

// BandLabel returns the badge text for band.
func BandLabel(band models.Band) string {
	if l, ok := bandLabels[band]; ok {
		return l
	}
	return string(band)
}

// TextPromptLabel returns the free-text label for q, or the default.
func TextPromptLabel(q models.Question) string {
	if q.TextPromptLabel != "" {
		return q.TextPromptLabel
	}
	return DefaultTextPromptLabel
}

// TextPromptPlaceholder returns the free-text hint for q, or the default.
func TextPromptPlaceholder(q models.Question) string {
	if q.TextPromptPlaceholder != "" {
		return q.TextPromptPlaceholder
	}
	return DefaultTextPromptPlaceholder
}

// RenderQuestion writes a question card: progress, domain, prompt and the
// numbered options. The option matching current is marked when current has
// a selection.
func RenderQuestion(w io.Writer, t *Theme, q models.Question, current, total int, response *models.Response) {
	bar := NewProgressBar(total, 20, t)
	bar.SetPrefix("Question ")
	bar.Update(current)

	fmt.Fprintln(w)
	fmt.Fprintln(w, bar.Render())
	fmt.Fprintln(w, t.muted.Sprint(q.Domain.Label()))
	fmt.Fprintln(w, t.heading.Sprint(q.Text))
	fmt.Fprintln(w)

	for i, opt := range q.Options {
		marker := " "
		if response != nil && response.HasSelection() && response.Value == opt.Value {
			marker = t.accent.Sprint("●")
		}
		fmt.Fprintf(w, "  %s %d) %s\n", marker, i+1, opt.Label)
	}

	if response != nil && response.HasText() {
		fmt.Fprintf(w, "\n  %s %s\n", t.muted.Sprint(TextPromptLabel(q)+":"), response.TextInput)
	}
}

// RenderResults writes the full results report.
func RenderResults(w io.Writer, t *Theme, results []models.ScreeningResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, t.heading.Sprint("No Results Yet"))
		fmt.Fprintln(w, "Complete a screening to see your personalized results and insights.")
		return
	}

	fmt.Fprintln(w, t.heading.Sprint("Your Screening Results"))
	fmt.Fprintln(w, t.muted.Sprint("Here's what your responses tell us about your learning and attention patterns"))
	fmt.Fprintln(w)
	DisclaimerWarning().Display(w, t.Enabled())

	for _, r := range results {
		fmt.Fprintln(w)
		badge := t.Band(r.Band).Sprintf("[%s]", BandLabel(r.Band))
		fmt.Fprintf(w, "%s %s\n", t.heading.Sprint(r.Domain.Label()), badge)
		fmt.Fprintf(w, "  %s Score: %d/%d (%.0f%%)\n",
			t.Band(r.Band).Sprint(ScoreBar(r.Normalized, 20)), r.RawScore, r.MaxScore, r.Normalized)
		fmt.Fprintf(w, "  %s\n", r.SummaryText)
		if len(r.Tips) > 0 {
			fmt.Fprintf(w, "  %s\n", t.accent.Sprint("Helpful Tips & Strategies"))
			for _, tip := range r.Tips {
				fmt.Fprintf(w, "    • %s\n", tip)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.heading.Sprint("Next Steps"))
	for _, s := range nextSteps {
		fmt.Fprintf(w, "  • %s\n", s)
	}
}

var nextSteps = []string{
	"Speak with your GP or healthcare provider",
	"Consult with educational specialists",
	"Connect with local support groups",
	"Research workplace or school accommodations",
	"Try `uniqyou chat` for personalized tips",
}

// ShareText returns one "Label: band (raw/max)" line per result.
func ShareText(results []models.ScreeningResult) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.ShareLine()
	}
	return strings.Join(lines, "\n")
}
