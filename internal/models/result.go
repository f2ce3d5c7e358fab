package models

import "fmt"

// Band is the discretized severity of a normalized domain score.
type Band string

// Severity bands
const (
	BandLow      Band = "low"      // normalized < 30
	BandModerate Band = "moderate" // 30 <= normalized < 60
	BandElevated Band = "elevated" // normalized >= 60
)

// ScreeningResult is the scored outcome for a single domain.
type ScreeningResult struct {
	Domain      Domain   `json:"domain"`
	RawScore    int      `json:"rawScore"`
	MaxScore    int      `json:"maxScore"`
	Normalized  float64  `json:"normalized"`
	Band        Band     `json:"band"`
	SummaryText string   `json:"summaryText"`
	Tips        []string `json:"tips"`
}

// ShareLine formats the result as "<Label>: <band> (<raw>/<max>)".
func (r ScreeningResult) ShareLine() string {
	return fmt.Sprintf("%s: %s (%d/%d)", r.Domain.Label(), r.Band, r.RawScore, r.MaxScore)
}
