// Package scoring reduces recorded responses into per-domain results.
//
// Score is pure: no I/O, no randomness, and the same inputs always produce
// identical output.
package scoring

import (
	"fmt"

	"github.com/harrison/uniqyou/internal/models"
)

// Band thresholds on the normalized 0-100 score
const (
	ModerateThreshold = 30.0
	ElevatedThreshold = 60.0
)

// QuestionSource supplies the ordered question set to score against.
type QuestionSource interface {
	Questions() []models.Question
}

// Score produces one result per domain: the canonical domains first, then any
// further domains of the catalog in order of first appearance. Responses to
// unknown questions are ignored and unanswered questions contribute zero.
// A domain's max score is its widest option value times its question count.
func Score(responses []models.Response, catalog QuestionSource) []models.ScreeningResult {
	questions := catalog.Questions()

	values := make(map[string]int, len(responses))
	for _, r := range responses {
		values[r.QuestionID] = r.Value
	}

	byDomain := make(map[models.Domain][]models.Question)
	var extra []models.Domain
	for _, q := range questions {
		if _, seen := byDomain[q.Domain]; !seen && !q.Domain.IsCanonical() {
			extra = append(extra, q.Domain)
		}
		byDomain[q.Domain] = append(byDomain[q.Domain], q)
	}

	domains := make([]models.Domain, 0, len(models.CanonicalDomains)+len(extra))
	domains = append(domains, models.CanonicalDomains...)
	domains = append(domains, extra...)

	results := make([]models.ScreeningResult, 0, len(domains))
	for _, domain := range domains {
		qs := byDomain[domain]
		raw, top := 0, 0
		for _, q := range qs {
			if v := q.MaxValue(); v > top {
				top = v
			}
			raw += values[q.ID]
		}
		results = append(results, newResult(domain, raw, top*len(qs)))
	}
	return results
}

func newResult(domain models.Domain, raw, max int) models.ScreeningResult {
	normalized := Normalize(raw, max)
	band := BandFor(normalized)
	return models.ScreeningResult{
		Domain:      domain,
		RawScore:    raw,
		MaxScore:    max,
		Normalized:  normalized,
		Band:        band,
		SummaryText: Summary(domain, band),
		Tips:        TipsFor(domain),
	}
}

// Normalize returns raw as a percentage of max, or 0 when max is 0.
func Normalize(raw, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(raw) / float64(max) * 100
}

// BandFor maps a normalized score to its severity band.
func BandFor(normalized float64) models.Band {
	switch {
	case normalized < ModerateThreshold:
		return models.BandLow
	case normalized < ElevatedThreshold:
		return models.BandModerate
	default:
		return models.BandElevated
	}
}

var summaryTemplates = map[models.Band]string{
	models.BandLow:      "Your responses suggest %s traits are not significantly elevated at this time.",
	models.BandModerate: "Your responses suggest some %s traits that may be worth exploring further.",
	models.BandElevated: "Your responses suggest elevated %s traits that may benefit from professional evaluation.",
}

// Summary renders the summary sentence for domain at band.
func Summary(domain models.Domain, band models.Band) string {
	tmpl, ok := summaryTemplates[band]
	if !ok {
		tmpl = summaryTemplates[models.BandLow]
	}
	return fmt.Sprintf(tmpl, domain.DisplayName())
}
