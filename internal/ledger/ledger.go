// Package ledger holds the per-question answers of the active screening
// session and mirrors them to persistent storage on every change.
package ledger

import "github.com/harrison/uniqyou/internal/models"

// Sink persists the full response collection. Implementations absorb their
// own failures; the in-memory ledger stays authoritative either way.
type Sink interface {
	SaveResponses(responses []models.Response)
	LoadResponses() []models.Response
}

// Ledger is an insertion-ordered set of Responses keyed by question ID.
// It is not safe for concurrent use.
type Ledger struct {
	responses []models.Response
	index     map[string]int
	sink      Sink
}

// New creates an empty ledger writing through to sink. A nil sink keeps the
// ledger memory-only.
func New(sink Sink) *Ledger {
	return &Ledger{
		index: make(map[string]int),
		sink:  sink,
	}
}

// AddOrUpdate records an answer for questionID.
//
// When a response already exists and value is the unselected sentinel while
// the stored value is not, only the text is replaced: typing an elaboration
// after picking an option must not erase the option. Every other case
// replaces the whole response.
func (l *Ledger) AddOrUpdate(questionID string, value int, textInput string) {
	next := models.Response{QuestionID: questionID, Value: value, TextInput: textInput}

	if i, ok := l.index[questionID]; ok {
		existing := l.responses[i]
		if isTextOnlyUpdate(existing, next) {
			existing.TextInput = textInput
			l.responses[i] = existing
		} else {
			l.responses[i] = next
		}
	} else {
		l.index[questionID] = len(l.responses)
		l.responses = append(l.responses, next)
	}

	l.persist()
}

func isTextOnlyUpdate(existing, next models.Response) bool {
	return !next.HasSelection() && existing.HasSelection()
}

// Remove deletes the response for questionID. Nothing is written when there
// was no such response.
func (l *Ledger) Remove(questionID string) {
	i, ok := l.index[questionID]
	if !ok {
		return
	}

	l.responses = append(l.responses[:i], l.responses[i+1:]...)
	delete(l.index, questionID)
	for j := i; j < len(l.responses); j++ {
		l.index[l.responses[j].QuestionID] = j
	}

	l.persist()
}

// All returns a copy of the responses in insertion order.
func (l *Ledger) All() []models.Response {
	out := make([]models.Response, len(l.responses))
	copy(out, l.responses)
	return out
}

// Find returns the response for questionID, if any.
func (l *Ledger) Find(questionID string) (models.Response, bool) {
	i, ok := l.index[questionID]
	if !ok {
		return models.Response{}, false
	}
	return l.responses[i], true
}

// Len returns the number of recorded responses.
func (l *Ledger) Len() int {
	return len(l.responses)
}

// Load replaces the in-memory state with what the sink holds. Duplicate
// question IDs keep their first position and their last value. Load does not
// write back.
func (l *Ledger) Load() {
	l.reset()
	if l.sink == nil {
		return
	}
	for _, r := range l.sink.LoadResponses() {
		if r.QuestionID == "" {
			continue
		}
		if i, ok := l.index[r.QuestionID]; ok {
			l.responses[i] = r
			continue
		}
		l.index[r.QuestionID] = len(l.responses)
		l.responses = append(l.responses, r)
	}
}

// Clear drops every response from memory without touching the sink.
func (l *Ledger) Clear() {
	l.reset()
}

func (l *Ledger) reset() {
	l.responses = nil
	l.index = make(map[string]int)
}

func (l *Ledger) persist() {
	if l.sink == nil {
		return
	}
	l.sink.SaveResponses(l.All())
}
