// Package session drives a screening run: it owns the navigation cursor,
// mediates every write to the response ledger and the result set, and
// reconstructs its state from storage on start.
//
// A Controller is single-threaded by contract. Every operation runs to
// completion synchronously and invalid requests are silent no-ops; callers
// check CanGoNext / CanGoPrevious first.
package session

import (
	"fmt"
	"math"

	"github.com/harrison/uniqyou/internal/ledger"
	"github.com/harrison/uniqyou/internal/models"
	"github.com/harrison/uniqyou/internal/scoring"
)

// Catalog is the read-only question set a session walks through.
type Catalog interface {
	Len() int
	At(i int) (models.Question, bool)
	Find(id string) (models.Question, bool)
	Questions() []models.Question
}

// Store persists responses and results. Implementations absorb their own
// failures.
type Store interface {
	ledger.Sink
	SaveResults(results []models.ScreeningResult)
	LoadResults() []models.ScreeningResult
	ClearAll()
}

// Logger receives session diagnostics.
type Logger interface {
	LogDebug(message string)
	LogCompletion(results []models.ScreeningResult)
}

// Options tunes a Controller.
type Options struct {
	LeavePolicy LeavePolicy
	Logger      Logger
}

// Progress describes the cursor position for display.
type Progress struct {
	Current    int // 1-based position, 0 for an empty catalog
	Total      int
	Percentage int
}

// Controller composes the ledger, navigation cursor and scoring engine.
type Controller struct {
	catalog  Catalog
	store    Store
	ledger   *ledger.Ledger
	policy   LeavePolicy
	logger   Logger
	cursor   int
	complete bool
	results  []models.ScreeningResult
}

// New creates a controller over catalog and store. Call Start to load any
// persisted state.
func New(catalog Catalog, store Store, opts Options) *Controller {
	policy := opts.LeavePolicy
	if policy == "" {
		policy = ClearOnLeave
	}
	return &Controller{
		catalog: catalog,
		store:   store,
		ledger:  ledger.New(store),
		policy:  policy,
		logger:  opts.Logger,
	}
}

func (c *Controller) debug(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.LogDebug(fmt.Sprintf(format, args...))
	}
}

// Start loads persisted responses and results and derives the cursor and
// completion flag from them. The cursor resumes at the persisted response
// count, clamped to the last question.
func (c *Controller) Start() {
	c.ledger.Load()
	c.results = c.store.LoadResults()
	c.complete = len(c.results) > 0

	n := c.catalog.Len()
	c.cursor = 0
	if n > 0 {
		c.cursor = c.ledger.Len()
		if c.cursor > n-1 {
			c.cursor = n - 1
		}
	}

	c.debug("Session started: %d responses, %d results, cursor %d/%d", c.ledger.Len(), len(c.results), c.cursor, n)
}

// CurrentQuestion returns the question under the cursor.
func (c *Controller) CurrentQuestion() (models.Question, bool) {
	return c.catalog.At(c.cursor)
}

// CurrentResponse returns the stored response for the question under the
// cursor, if any.
func (c *Controller) CurrentResponse() (models.Response, bool) {
	q, ok := c.CurrentQuestion()
	if !ok {
		return models.Response{}, false
	}
	return c.ledger.Find(q.ID)
}

// Progress reports the 1-based position of the cursor.
func (c *Controller) Progress() Progress {
	n := c.catalog.Len()
	if n == 0 {
		return Progress{}
	}
	current := c.cursor + 1
	return Progress{
		Current:    current,
		Total:      n,
		Percentage: int(math.Round(float64(current) / float64(n) * 100)),
	}
}

// Answer records value and textInput for questionID. It is ignored once the
// session is complete and for IDs outside the catalog.
func (c *Controller) Answer(questionID string, value int, textInput string) {
	if c.complete {
		c.debug("Ignoring answer for %s: session complete", questionID)
		return
	}
	if _, ok := c.catalog.Find(questionID); !ok {
		c.debug("Ignoring answer for unknown question %s", questionID)
		return
	}
	c.ledger.AddOrUpdate(questionID, value, textInput)
}

// CanGoNext reports whether the question under the cursor has a response.
func (c *Controller) CanGoNext() bool {
	_, ok := c.CurrentResponse()
	return ok
}

// CanGoPrevious reports whether the cursor can move back.
func (c *Controller) CanGoPrevious() bool {
	return c.cursor > 0
}

// IsLastStep reports whether the cursor is on the final question.
func (c *Controller) IsLastStep() bool {
	return c.cursor == c.catalog.Len()-1
}

// Next advances the cursor. It does nothing when the current question is
// unanswered or already the last one.
func (c *Controller) Next() {
	if !c.CanGoNext() || c.cursor >= c.catalog.Len()-1 {
		return
	}
	c.leave()
	c.cursor++
}

// Previous moves the cursor back one question.
func (c *Controller) Previous() {
	if !c.CanGoPrevious() {
		return
	}
	c.leave()
	c.cursor--
}

// GoTo jumps to index. Out-of-range indexes are ignored.
func (c *Controller) GoTo(index int) {
	if index < 0 || index >= c.catalog.Len() {
		return
	}
	c.leave()
	c.cursor = index
}

// leave applies the leave policy to the question under the cursor.
func (c *Controller) leave() {
	if c.policy != ClearOnLeave {
		return
	}
	if q, ok := c.CurrentQuestion(); ok {
		c.ledger.Remove(q.ID)
	}
}

// Complete scores every recorded response, replaces the persisted result
// batch and marks the session complete. Each call rescores, so answers
// dropped by navigation after completion are reflected.
func (c *Controller) Complete() []models.ScreeningResult {
	c.results = scoring.Score(c.ledger.All(), c.catalog)
	c.store.SaveResults(c.results)
	c.complete = true

	if c.logger != nil {
		c.logger.LogCompletion(c.Results())
	}
	return c.Results()
}

// Reset discards all responses and results, rewinds the cursor and clears
// every persisted slot.
func (c *Controller) Reset() {
	c.ledger.Clear()
	c.results = nil
	c.cursor = 0
	c.complete = false
	c.store.ClearAll()
	c.debug("Session reset")
}

// Responses returns the recorded responses in insertion order.
func (c *Controller) Responses() []models.Response {
	return c.ledger.All()
}

// ResponseFor returns the recorded response for questionID.
func (c *Controller) ResponseFor(questionID string) (models.Response, bool) {
	return c.ledger.Find(questionID)
}

// Results returns a copy of the current result batch.
func (c *Controller) Results() []models.ScreeningResult {
	out := make([]models.ScreeningResult, len(c.results))
	copy(out, c.results)
	return out
}

// IsComplete reports whether Complete has run since the last Reset.
func (c *Controller) IsComplete() bool {
	return c.complete
}

// Cursor returns the index of the question being presented.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Total returns the number of questions in the catalog.
func (c *Controller) Total() int {
	return c.catalog.Len()
}

// HasData reports whether any responses or results exist.
func (c *Controller) HasData() bool {
	return c.ledger.Len() > 0 || len(c.results) > 0
}

// Policy returns the active leave policy.
func (c *Controller) Policy() LeavePolicy {
	return c.policy
}
