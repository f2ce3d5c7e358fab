package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/uniqyou/internal/models"
)

// Theme is the color scheme for terminal output.
type Theme struct {
	enabled  bool
	accent   *color.Color
	muted    *color.Color
	heading  *color.Color
	low      *color.Color
	moderate *color.Color
	elevated *color.Color
}

// NewTheme returns the palette for darkMode ("auto", "light" or "dark").
// When enabled is false every color is a no-op.
func NewTheme(darkMode string, enabled bool) *Theme {
	var t *Theme
	switch darkMode {
	case models.DarkModeLight:
		t = &Theme{
			accent:   color.New(color.FgBlue),
			muted:    color.New(color.FgBlack),
			heading:  color.New(color.Bold, color.FgBlack),
			low:      color.New(color.FgGreen),
			moderate: color.New(color.FgYellow),
			elevated: color.New(color.FgRed),
		}
	case models.DarkModeDark:
		t = &Theme{
			accent:   color.New(color.FgHiCyan),
			muted:    color.New(color.FgHiBlack),
			heading:  color.New(color.Bold, color.FgHiWhite),
			low:      color.New(color.FgHiGreen),
			moderate: color.New(color.FgHiYellow),
			elevated: color.New(color.FgHiRed),
		}
	default:
		t = &Theme{
			accent:   color.New(color.FgCyan),
			muted:    color.New(color.FgHiBlack),
			heading:  color.New(color.Bold),
			low:      color.New(color.FgGreen),
			moderate: color.New(color.FgYellow),
			elevated: color.New(color.FgRed),
		}
	}

	t.enabled = enabled
	for _, c := range []*color.Color{t.accent, t.muted, t.heading, t.low, t.moderate, t.elevated} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// PlainTheme returns a theme that never emits escape codes.
func PlainTheme() *Theme {
	return NewTheme(models.DarkModeAuto, false)
}

// Enabled reports whether the theme emits colors.
func (t *Theme) Enabled() bool {
	return t.enabled
}

// Band returns the color for a severity band.
func (t *Theme) Band(band models.Band) *color.Color {
	switch band {
	case models.BandModerate:
		return t.moderate
	case models.BandElevated:
		return t.elevated
	default:
		return t.low
	}
}

// IsTerminal reports whether w is an interactive terminal that should get
// colored output. NO_COLOR is honoured.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
