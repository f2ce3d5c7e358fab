package storage

import (
	"encoding/json"
	"fmt"

	"github.com/harrison/uniqyou/internal/models"
)

// DefaultNamespace prefixes every slot key.
const DefaultNamespace = "uniqyou"

// Slot names one logical record in the store.
type Slot string

// Stored slots
const (
	SlotResponses   Slot = "responses"
	SlotResults     Slot = "results"
	SlotPreferences Slot = "preferences"
	SlotConsent     Slot = "consent"
)

// AllSlots lists every slot ClearAll removes.
var AllSlots = []Slot{SlotResponses, SlotResults, SlotPreferences, SlotConsent}

// Logger receives persistence failures that Storage swallows.
type Logger interface {
	LogWarn(message string)
	LogDebug(message string)
}

// Storage reads and writes the typed slots over a Backend.
//
// Every failure (backend error, malformed JSON) is logged and absorbed: loads
// fall back to the slot's empty value and saves leave the previous value in
// place. Nothing here panics or returns an error to the caller.
type Storage struct {
	backend   Backend
	namespace string
	logger    Logger
}

// New wraps backend. An empty namespace uses DefaultNamespace; a nil logger
// discards diagnostics.
func New(backend Backend, namespace string, logger Logger) *Storage {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Storage{backend: backend, namespace: namespace, logger: logger}
}

// Key returns the backend key for slot, e.g. "uniqyou_responses".
func (s *Storage) Key(slot Slot) string {
	return s.namespace + "_" + string(slot)
}

// Backend returns the underlying backend.
func (s *Storage) Backend() Backend {
	return s.backend
}

func (s *Storage) warn(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.LogWarn(fmt.Sprintf(format, args...))
	}
}

func (s *Storage) debug(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.LogDebug(fmt.Sprintf(format, args...))
	}
}

func (s *Storage) save(slot Slot, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.warn("Failed to encode %s: %v", slot, err)
		return
	}
	if err := s.backend.Set(s.Key(slot), data); err != nil {
		s.warn("Failed to save %s: %v", slot, err)
		return
	}
	s.debug("Saved %s (%d bytes)", slot, len(data))
}

// load decodes slot into v and reports whether a value was applied.
func (s *Storage) load(slot Slot, v interface{}) bool {
	data, ok, err := s.backend.Get(s.Key(slot))
	if err != nil {
		s.warn("Failed to load %s: %v", slot, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.warn("Discarding malformed %s: %v", slot, err)
		return false
	}
	return true
}

// SaveResponses replaces the stored responses with responses.
func (s *Storage) SaveResponses(responses []models.Response) {
	if responses == nil {
		responses = []models.Response{}
	}
	s.save(SlotResponses, responses)
}

// LoadResponses returns the stored responses, or an empty slice.
func (s *Storage) LoadResponses() []models.Response {
	var out []models.Response
	if !s.load(SlotResponses, &out) || out == nil {
		return []models.Response{}
	}
	return out
}

// SaveResults replaces the stored results with results.
func (s *Storage) SaveResults(results []models.ScreeningResult) {
	if results == nil {
		results = []models.ScreeningResult{}
	}
	s.save(SlotResults, results)
}

// LoadResults returns the stored results, or an empty slice.
func (s *Storage) LoadResults() []models.ScreeningResult {
	var out []models.ScreeningResult
	if !s.load(SlotResults, &out) || out == nil {
		return []models.ScreeningResult{}
	}
	return out
}

// SavePreferences stores prefs.
func (s *Storage) SavePreferences(prefs models.Preferences) {
	s.save(SlotPreferences, prefs)
}

// LoadPreferences returns the stored preferences. Missing fields take their
// defaults and an unknown dark mode falls back to "auto".
func (s *Storage) LoadPreferences() models.Preferences {
	prefs := models.DefaultPreferences()
	if !s.load(SlotPreferences, &prefs) {
		return models.DefaultPreferences()
	}
	if !models.ValidDarkMode(prefs.DarkMode) {
		s.debug("Unknown dark mode %q, using %q", prefs.DarkMode, models.DarkModeAuto)
		prefs.DarkMode = models.DarkModeAuto
	}
	return prefs
}

// SaveConsent records whether the user has accepted the screening notice.
func (s *Storage) SaveConsent(consent bool) {
	s.save(SlotConsent, consent)
}

// LoadConsent returns the stored consent flag, false when absent.
func (s *Storage) LoadConsent() bool {
	var consent bool
	if !s.load(SlotConsent, &consent) {
		return false
	}
	return consent
}

// ClearAll removes every slot. A failure on one slot does not stop the rest.
func (s *Storage) ClearAll() {
	for _, slot := range AllSlots {
		if err := s.backend.Delete(s.Key(slot)); err != nil {
			s.warn("Failed to clear %s: %v", slot, err)
		}
	}
}

// HasData reports whether any responses or results are stored.
func (s *Storage) HasData() bool {
	return len(s.LoadResponses()) > 0 || len(s.LoadResults()) > 0
}

// Exists reports whether slot currently holds a value.
func (s *Storage) Exists(slot Slot) bool {
	_, ok, err := s.backend.Get(s.Key(slot))
	if err != nil {
		s.warn("Failed to check %s: %v", slot, err)
		return false
	}
	return ok
}
