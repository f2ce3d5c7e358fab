package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLabel(t *testing.T) {
	tests := []struct {
		domain Domain
		want   string
	}{
		{DomainADHD, "ADHD"},
		{DomainTourettes, "Tourette's Syndrome"},
		{DomainSocialCommunication, "Social Communication"},
		{Domain("executive-function"), "Executive Function"},
		{Domain("memory"), "Memory"},
		{Domain("élan-vital"), "Élan Vital"},
		{Domain("ödeme"), "Ödeme"},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.domain.Label())
		})
	}
}

func TestDomainDisplayName(t *testing.T) {
	assert.Equal(t, "adhd", DomainADHD.DisplayName())
	assert.Equal(t, "auditory processing", DomainAuditoryProcessing.DisplayName())
	assert.Equal(t, "a b-c", Domain("a-b-c").DisplayName())
}

func TestCanonicalDomainsAreLabelled(t *testing.T) {
	require.Len(t, CanonicalDomains, 14)
	for _, d := range CanonicalDomains {
		assert.True(t, d.IsCanonical(), "domain %s", d)
	}
	assert.False(t, Domain("unknown").IsCanonical())
}

func TestQuestionMaxValue(t *testing.T) {
	q := Question{Options: []QuestionOption{{Value: 0}, {Value: 6}, {Value: 2}}}
	assert.Equal(t, 6, q.MaxValue())

	negative := Question{Options: []QuestionOption{{Value: -3}, {Value: -1}}}
	assert.Equal(t, 0, negative.MaxValue())
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid", Question{ID: "q1", Domain: DomainADHD, Text: "?", Options: []QuestionOption{{Value: 1}}}, false},
		{"missing id", Question{Domain: DomainADHD, Text: "?", Options: []QuestionOption{{Value: 1}}}, true},
		{"missing domain", Question{ID: "q1", Text: "?", Options: []QuestionOption{{Value: 1}}}, true},
		{"missing text", Question{ID: "q1", Domain: DomainADHD, Options: []QuestionOption{{Value: 1}}}, true},
		{"no options", Question{ID: "q1", Domain: DomainADHD, Text: "?"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponseSelectionAndText(t *testing.T) {
	assert.False(t, Response{Value: UnselectedValue}.HasSelection())
	assert.True(t, Response{Value: 3}.HasSelection())
	assert.False(t, Response{TextInput: "  \n"}.HasText())
	assert.True(t, Response{TextInput: " a "}.HasText())
}

func TestResponseJSONOmitsEmptyText(t *testing.T) {
	data, err := json.Marshal(Response{QuestionID: "adhd-1", Value: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"questionId":"adhd-1","value":2}`, string(data))
}

func TestScreeningResultShareLine(t *testing.T) {
	r := ScreeningResult{Domain: DomainAutism, Band: BandModerate, RawScore: 7, MaxScore: 16}
	assert.Equal(t, "Autism Spectrum: moderate (7/16)", r.ShareLine())
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.False(t, p.AllowAIChat)
	assert.Equal(t, DarkModeAuto, p.DarkMode)
	assert.True(t, ValidDarkMode("dark"))
	assert.False(t, ValidDarkMode("sepia"))
}
