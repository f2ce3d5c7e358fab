// Package catalog loads the static, ordered screening question catalog.
//
// The built-in catalog is embedded from questions.yaml. A replacement catalog
// can be loaded from disk with LoadFile; it is validated once at load time and
// never mutated afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/uniqyou/internal/models"
)

//go:embed questions.yaml
var defaultYAML []byte

// ErrInvalidCatalog is returned when catalog data violates its invariants.
var ErrInvalidCatalog = errors.New("invalid catalog")

// scaleOption is an option template from the shared scale.
type scaleOption struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

// catalogFile mirrors the YAML layout.
type catalogFile struct {
	Scale     []scaleOption     `yaml:"scale"`
	Questions []models.Question `yaml:"questions"`
}

// Catalog is an ordered, read-only list of questions.
type Catalog struct {
	questions []models.Question
	byID      map[string]int
	domains   []models.Domain
	byDomain  map[models.Domain][]models.Question
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// MustDefault returns the embedded catalog and panics if it is malformed.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and parses a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. Questions without options receive the
// shared scale, with option ids derived as "<question-id>-<n>".
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}

	questions := make([]models.Question, 0, len(file.Questions))
	for _, q := range file.Questions {
		if len(q.Options) == 0 {
			q.Options = make([]models.QuestionOption, 0, len(file.Scale))
			for i, s := range file.Scale {
				q.Options = append(q.Options, models.QuestionOption{
					ID:    fmt.Sprintf("%s-%d", q.ID, i+1),
					Label: s.Label,
					Value: s.Value,
				})
			}
		}
		if q.Type == "" {
			q.Type = models.QuestionTypeLikert
		}
		questions = append(questions, q)
	}

	return New(questions)
}

// New builds a catalog from an ordered question list.
func New(questions []models.Question) (*Catalog, error) {
	c := &Catalog{
		questions: make([]models.Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		byDomain:  make(map[models.Domain][]models.Question),
	}
	copy(c.questions, questions)

	for i := range c.questions {
		q := c.questions[i]
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidCatalog, q.ID)
		}
		c.byID[q.ID] = i
		if _, seen := c.byDomain[q.Domain]; !seen {
			c.domains = append(c.domains, q.Domain)
		}
		c.byDomain[q.Domain] = append(c.byDomain[q.Domain], q)
	}

	return c, nil
}

// Len returns the total number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at index i.
func (c *Catalog) At(i int) (models.Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[i], true
}

// Find looks a question up by id.
func (c *Catalog) Find(id string) (models.Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return c.questions[i], true
}

// IndexOf returns the position of the question with the given id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Questions returns a copy of all questions in catalog order.
func (c *Catalog) Questions() []models.Question {
	out := make([]models.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// ByDomain returns the questions of a domain in catalog order.
func (c *Catalog) ByDomain(d models.Domain) []models.Question {
	qs := c.byDomain[d]
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}

// Domains returns the domains present in the catalog in first-appearance order.
func (c *Catalog) Domains() []models.Domain {
	out := make([]models.Domain, len(c.domains))
	copy(out, c.domains)
	return out
}
