package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Domain is a named category of screening questions scored independently.
type Domain string

// Screening domains
const (
	DomainADHD                Domain = "adhd"
	DomainAutism              Domain = "autism"
	DomainDyslexia            Domain = "dyslexia"
	DomainDyscalculia         Domain = "dyscalculia"
	DomainDysgraphia          Domain = "dysgraphia"
	DomainDyspraxia           Domain = "dyspraxia"
	DomainAuditoryProcessing  Domain = "auditory-processing"
	DomainVisualProcessing    Domain = "visual-processing"
	DomainTourettes           Domain = "tourettes"
	DomainOCD                 Domain = "ocd"
	DomainAnxiety             Domain = "anxiety"
	DomainDepression          Domain = "depression"
	DomainSocialCommunication Domain = "social-communication"
	DomainSensoryProcessing   Domain = "sensory-processing"
)

// CanonicalDomains is the fixed order in which results are produced and displayed.
var CanonicalDomains = []Domain{
	DomainADHD,
	DomainAutism,
	DomainDyslexia,
	DomainDyscalculia,
	DomainDysgraphia,
	DomainDyspraxia,
	DomainAuditoryProcessing,
	DomainVisualProcessing,
	DomainTourettes,
	DomainOCD,
	DomainAnxiety,
	DomainDepression,
	DomainSocialCommunication,
	DomainSensoryProcessing,
}

var domainLabels = map[Domain]string{
	DomainADHD:                "ADHD",
	DomainAutism:              "Autism Spectrum",
	DomainDyslexia:            "Dyslexia",
	DomainDyscalculia:         "Dyscalculia",
	DomainDysgraphia:          "Dysgraphia",
	DomainDyspraxia:           "Dyspraxia",
	DomainAuditoryProcessing:  "Auditory Processing",
	DomainVisualProcessing:    "Visual Processing",
	DomainTourettes:           "Tourette's Syndrome",
	DomainOCD:                 "OCD Traits",
	DomainAnxiety:             "Anxiety Traits",
	DomainDepression:          "Depression Traits",
	DomainSocialCommunication: "Social Communication",
	DomainSensoryProcessing:   "Sensory Processing",
}

// IsCanonical reports whether d is one of the built-in screening domains.
func (d Domain) IsCanonical() bool {
	_, ok := domainLabels[d]
	return ok
}

// Label returns the heading label for the domain, e.g. "Autism Spectrum".
// Unknown domains get their slug title-cased.
func (d Domain) Label() string {
	if label, ok := domainLabels[d]; ok {
		return label
	}
	words := strings.Fields(strings.Replace(string(d), "-", " ", 1))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// DisplayName returns the lower-case name used inside generated summary text.
// Only the first hyphen is replaced: "social-communication" -> "social communication".
func (d Domain) DisplayName() string {
	return strings.Replace(string(d), "-", " ", 1)
}
