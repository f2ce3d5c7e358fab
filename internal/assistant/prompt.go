package assistant

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/uniqyou/internal/models"
)

const (
	maxContextElaborations = 5
	maxSuggestions         = 4
	maxResources           = 3
	minExtractedLength     = 10
)

const personaPrompt = `You are Dr. Sarah Chen, a compassionate and highly qualified clinical psychologist specializing in neurodevelopmental disorders, learning differences, and mental health. You have over 15 years of experience working with individuals across the lifespan and are known for your warm, professional approach.

IMPORTANT: Keep all responses SHORT and CONCISE - maximum 1-3 lines. Be direct, helpful, and to the point.

Your expertise includes:
- ADHD (Attention-Deficit/Hyperactivity Disorder)
- Autism Spectrum Disorder (ASD)
- Dyslexia, Dyscalculia, Dysgraphia, and Dyspraxia
- Auditory and Visual Processing Disorders
- Tourette's Syndrome and Tic Disorders
- OCD (Obsessive-Compulsive Disorder)
- Anxiety and Depression
- Social Communication Disorders
- Sensory Processing Disorders

IMPORTANT GUIDELINES:
1. Keep responses SHORT - maximum 1-3 lines
2. Be direct, helpful, and to the point
3. Provide evidence-based information and practical strategies
4. NEVER make medical diagnoses - you are providing educational information only
5. Always remind users that you are not a medical professional and they should consult healthcare providers for proper evaluation
6. Base your responses on screening results when available
7. Offer specific, actionable advice and coping strategies
8. Be encouraging and focus on strengths and potential
9. Suggest appropriate resources and professional help when needed
10. Use clear, accessible language while maintaining professional expertise
11. Always prioritize the user's wellbeing and safety

Current context:`

const closingPrompt = "\n\nRemember: You are providing educational information and support, not medical advice. Always be encouraging, professional, and kind."

// QuestionLookup resolves question IDs for elaboration context.
type QuestionLookup interface {
	Find(id string) (models.Question, bool)
}

// buildSystemPrompt renders the persona plus whatever screening context the
// user has agreed to share.
func buildSystemPrompt(c Context, questions QuestionLookup) string {
	var b strings.Builder
	b.WriteString(personaPrompt)

	switch {
	case len(c.Results) == 0:
		b.WriteString("\n\nThe user has not completed a screening yet. Encourage them to do so for more personalized guidance.")
	case !c.Preferences.AllowAIChat:
		b.WriteString("\n\nThe user has chosen not to share their screening results. Offer general guidance only.")
	default:
		b.WriteString("\n\nThe user has completed a screening with the following results:\n")
		for _, r := range c.Results {
			fmt.Fprintf(&b, "- %s: %s level (%.1f%%)\n", r.Domain.DisplayName(), r.Band, r.Normalized)
		}

		var elaborations []models.Response
		for _, r := range c.Responses {
			if r.HasText() {
				elaborations = append(elaborations, r)
			}
			if len(elaborations) == maxContextElaborations {
				break
			}
		}
		if len(elaborations) > 0 {
			b.WriteString("\nThe user provided additional context in their responses:\n")
			for i, r := range elaborations {
				fmt.Fprintf(&b, "%d. %s: %q\n", i+1, questionLabel(r.QuestionID, questions), strings.TrimSpace(r.TextInput))
			}
		}
	}

	b.WriteString(closingPrompt)
	return b.String()
}

// questionLabel names the question an elaboration belongs to: its catalog
// text when known, else the label of the domain its ID is prefixed with.
func questionLabel(id string, questions QuestionLookup) string {
	if questions != nil {
		if q, ok := questions.Find(id); ok {
			return q.Text
		}
	}
	for _, d := range models.CanonicalDomains {
		if strings.HasPrefix(id, string(d)+"-") {
			return d.Label()
		}
	}
	return "General"
}

func buildUserPrompt(system, message string) string {
	return system + "\n\nUser message: " + message +
		"\n\nPlease respond as Dr. Sarah Chen, providing professional, kind, and helpful guidance."
}

// extractSuggestions returns the text of top-level list items in a markdown
// reply, skipping short ones.
func extractSuggestions(reply string) []string {
	source := []byte(reply)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || len(out) == maxSuggestions {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		s := strings.TrimSpace(itemText(item, source))
		if len(s) > minExtractedLength {
			out = append(out, s)
		}
		return ast.WalkSkipChildren, nil
	})
	return out
}

// itemText collects inline text of a list item, ignoring nested lists.
func itemText(item *ast.ListItem, source []byte) string {
	var b strings.Builder
	for block := item.FirstChild(); block != nil; block = block.NextSibling() {
		if _, nested := block.(*ast.List); nested {
			continue
		}
		ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if t, ok := n.(*ast.Text); ok {
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		})
	}
	return b.String()
}

var resourceKeywords = []string{"resource", "website", "organization", "support group"}

// extractResources returns reply lines that point at outside help.
func extractResources(reply string) []string {
	var out []string
	for _, line := range strings.Split(reply, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range resourceKeywords {
			if strings.Contains(lower, kw) {
				if s := strings.TrimSpace(line); len(s) > minExtractedLength {
					out = append(out, s)
				}
				break
			}
		}
		if len(out) == maxResources {
			break
		}
	}
	return out
}
