package models

// UnselectedValue is the value a Response carries before any option is chosen.
// It is also the value of the lowest option ("Never"), so the two states are
// indistinguishable once stored. Everything that has to tell them apart goes
// through HasSelection.
const UnselectedValue = 0

// Response is the recorded answer to one question.
type Response struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
	TextInput  string `json:"textInput,omitempty"`
}

// HasSelection reports whether the response carries a non-sentinel option value.
func (r Response) HasSelection() bool {
	return r.Value != UnselectedValue
}

// HasText reports whether free-text elaboration was provided.
func (r Response) HasText() bool {
	for _, c := range r.TextInput {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return true
		}
	}
	return false
}
