package display

import (
	"fmt"
	"strings"
)

// ProgressBar renders questionnaire progress as an ASCII bar.
type ProgressBar struct {
	current int
	total   int
	width   int
	prefix  string
	theme   *Theme
}

// NewProgressBar creates a progress bar width characters wide.
func NewProgressBar(total, width int, theme *Theme) *ProgressBar {
	if width < 1 {
		width = 10
	}
	if theme == nil {
		theme = PlainTheme()
	}
	return &ProgressBar{
		total: total,
		width: width,
		theme: theme,
	}
}

// Update sets the current progress value
func (pb *ProgressBar) Update(current int) {
	pb.current = current
}

// SetPrefix sets a custom prefix for the progress bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.prefix = prefix
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() int {
	if pb.total == 0 {
		return 0
	}
	perc := (pb.current * 100) / pb.total
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// Render generates the bar, e.g. "Question [====      ] 4/10 (40%)".
func (pb *ProgressBar) Render() string {
	perc := pb.Percentage()
	filled := (perc * pb.width) / 100

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	result := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if perc == 100 {
		return pb.theme.low.Sprint(result)
	}
	return pb.theme.accent.Sprint(result)
}

// ScoreBar renders a normalized 0-100 score as a filled bar width wide.
func ScoreBar(normalized float64, width int) string {
	if width < 1 {
		width = 20
	}
	filled := int(normalized / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
