package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/uniqyou/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleResults() []models.ScreeningResult {
	return []models.ScreeningResult{
		{
			Domain: models.DomainADHD, RawScore: 16, MaxScore: 20, Normalized: 80,
			Band: models.BandElevated, SummaryText: "elevated summary",
			Tips: []string{"Use timers or the Pomodoro technique"},
		},
		{
			Domain: models.DomainSocialCommunication, RawScore: 2, MaxScore: 12, Normalized: 16.7,
			Band: models.BandLow, SummaryText: "low summary",
		},
	}
}

func TestProgressBar_Render(t *testing.T) {
	pb := NewProgressBar(10, 10, PlainTheme())
	pb.SetPrefix("Q ")
	pb.Update(4)

	assert.Equal(t, "Q [====      ] 4/10 (40%)", pb.Render())
	assert.Equal(t, 40, pb.Percentage())

	pb.Update(12)
	assert.Equal(t, 100, pb.Percentage(), "percentage is capped")

	empty := NewProgressBar(0, 0, nil)
	assert.Equal(t, 0, empty.Percentage())
	assert.Equal(t, "[          ] 0/0 (0%)", empty.Render())
}

func TestProgressBar_ColorFollowsTheme(t *testing.T) {
	pb := NewProgressBar(4, 4, NewTheme(models.DarkModeAuto, true))
	pb.Update(2)
	assert.Contains(t, pb.Render(), "\x1b[")

	pb = NewProgressBar(4, 4, NewTheme(models.DarkModeAuto, false))
	pb.Update(2)
	assert.NotContains(t, pb.Render(), "\x1b[")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ScoreBar(50, 10))
	assert.Equal(t, "██████████", ScoreBar(150, 10))
	assert.Equal(t, "░░░░░░░░░░", ScoreBar(-5, 10))
	assert.Equal(t, 20, len([]rune(ScoreBar(0, 0))))
}

func TestRenderQuestion(t *testing.T) {
	q := models.Question{
		ID: "adhd-1", Domain: models.DomainADHD, Text: "How often?",
		Options: []models.QuestionOption{
			{ID: "a", Label: "Never", Value: 0},
			{ID: "b", Label: "Often", Value: 3},
		},
		TextPromptLabel: "Example?",
	}
	resp := &models.Response{QuestionID: "adhd-1", Value: 3, TextInput: "at work"}

	var buf bytes.Buffer
	RenderQuestion(&buf, PlainTheme(), q, 1, 35, resp)
	out := buf.String()

	assert.Contains(t, out, "Question [")
	assert.Contains(t, out, "1/35")
	assert.Contains(t, out, "ADHD")
	assert.Contains(t, out, "How often?")
	assert.Contains(t, out, "    1) Never")
	assert.Contains(t, out, "  ● 2) Often")
	assert.Contains(t, out, "Example?: at work")
}

func TestRenderQuestion_SentinelIsNotMarked(t *testing.T) {
	q := models.Question{
		ID: "q", Domain: models.DomainOCD, Text: "t",
		Options: []models.QuestionOption{{ID: "a", Label: "Never", Value: 0}},
	}
	var buf bytes.Buffer
	RenderQuestion(&buf, PlainTheme(), q, 1, 1, &models.Response{QuestionID: "q", Value: 0})
	assert.NotContains(t, buf.String(), "●")
}

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	RenderResults(&buf, PlainTheme(), sampleResults())
	out := buf.String()

	assert.Contains(t, out, "Your Screening Results")
	assert.Contains(t, out, "Important Disclaimer")
	assert.Contains(t, out, "ADHD [Elevated]")
	assert.Contains(t, out, "Score: 16/20 (80%)")
	assert.Contains(t, out, "• Use timers or the Pomodoro technique")
	assert.Contains(t, out, "Social Communication [Low]")
	assert.Contains(t, out, "Next Steps")
	assert.NotContains(t, out, "\x1b[", "plain theme has no escape codes")
}

func TestRenderResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderResults(&buf, PlainTheme(), nil)
	assert.Contains(t, buf.String(), "No Results Yet")
}

func TestShareText(t *testing.T) {
	assert.Equal(t,
		"ADHD: elevated (16/20)\nSocial Communication: low (2/12)",
		ShareText(sampleResults()))
	assert.Equal(t, "", ShareText(nil))
}

func TestTextPromptDefaults(t *testing.T) {
	q := models.Question{}
	assert.Equal(t, DefaultTextPromptLabel, TextPromptLabel(q))
	assert.Equal(t, DefaultTextPromptPlaceholder, TextPromptPlaceholder(q))

	q.TextPromptLabel = "L"
	q.TextPromptPlaceholder = "P"
	assert.Equal(t, "L", TextPromptLabel(q))
	assert.Equal(t, "P", TextPromptPlaceholder(q))
}

func TestBandLabel(t *testing.T) {
	assert.Equal(t, "Moderate", BandLabel(models.BandModerate))
	assert.Equal(t, "weird", BandLabel("weird"))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}

func TestThemeBandColors(t *testing.T) {
	theme := NewTheme(models.DarkModeDark, true)
	assert.True(t, theme.Enabled())
	low := theme.Band(models.BandLow).Sprint("x")
	high := theme.Band(models.BandElevated).Sprint("x")
	assert.NotEqual(t, low, high)
	assert.True(t, strings.HasSuffix(low, "x\x1b[0m"))
}
