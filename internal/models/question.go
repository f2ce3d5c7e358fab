package models

import "fmt"

// Question types
const (
	QuestionTypeLikert = "likert"
	QuestionTypeMCQ    = "mcq"
)

// QuestionOption is one discrete answer choice of a question.
type QuestionOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Question is an immutable catalog entry.
type Question struct {
	ID                    string           `json:"id" yaml:"id"`
	Domain                Domain           `json:"domain" yaml:"domain"`
	Text                  string           `json:"text" yaml:"text"`
	Type                  string           `json:"type" yaml:"type"`
	Options               []QuestionOption `json:"options" yaml:"options"`
	TextPromptLabel       string           `json:"textInputLabel,omitempty" yaml:"text_prompt_label,omitempty"`
	TextPromptPlaceholder string           `json:"textInputPlaceholder,omitempty" yaml:"text_prompt_placeholder,omitempty"`
}

// MaxValue returns the highest option value of the question, never below zero.
func (q Question) MaxValue() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

// HasTextPrompt reports whether the question asks for free-text elaboration.
func (q Question) HasTextPrompt() bool {
	return q.TextPromptLabel != ""
}

// OptionByValue returns the option carrying value, if any.
func (q Question) OptionByValue(value int) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// Validate checks the structural invariants of a catalog entry.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if q.Domain == "" {
		return fmt.Errorf("question %s: domain is required", q.ID)
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text is required", q.ID)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %s: at least one option is required", q.ID)
	}
	return nil
}
