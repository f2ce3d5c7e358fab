package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/harrison/uniqyou/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns  []string
	debugs []string
}

func (l *recordingLogger) LogWarn(message string)  { l.warns = append(l.warns, message) }
func (l *recordingLogger) LogDebug(message string) { l.debugs = append(l.debugs, message) }

func newTestStorage() (*Storage, *MemoryBackend, *recordingLogger) {
	b := NewMemoryBackend()
	log := &recordingLogger{}
	return New(b, "", log), b, log
}

func TestStorage_Keys(t *testing.T) {
	s, _, _ := newTestStorage()
	assert.Equal(t, "uniqyou_responses", s.Key(SlotResponses))
	assert.Equal(t, "uniqyou_results", s.Key(SlotResults))
	assert.Equal(t, "uniqyou_preferences", s.Key(SlotPreferences))
	assert.Equal(t, "uniqyou_consent", s.Key(SlotConsent))

	custom := New(NewMemoryBackend(), "demo", nil)
	assert.Equal(t, "demo_consent", custom.Key(SlotConsent))
}

func TestStorage_RoundTrip(t *testing.T) {
	s, _, _ := newTestStorage()

	responses := []models.Response{
		{QuestionID: "adhd-1", Value: 3},
		{QuestionID: "adhd-2", Value: 0, TextInput: "only at work"},
	}
	results := []models.ScreeningResult{{
		Domain:      models.DomainADHD,
		RawScore:    6,
		MaxScore:    20,
		Normalized:  30,
		Band:        models.BandModerate,
		SummaryText: "summary",
		Tips:        []string{"a", "b"},
	}}
	prefs := models.Preferences{AllowAIChat: true, DarkMode: models.DarkModeDark}

	s.SaveResponses(responses)
	s.SaveResults(results)
	s.SavePreferences(prefs)
	s.SaveConsent(true)

	assert.Equal(t, responses, s.LoadResponses())
	assert.Equal(t, results, s.LoadResults())
	assert.Equal(t, prefs, s.LoadPreferences())
	assert.True(t, s.LoadConsent())
	assert.True(t, s.HasData())
}

func TestStorage_EmptyDefaults(t *testing.T) {
	s, _, log := newTestStorage()

	assert.Equal(t, []models.Response{}, s.LoadResponses())
	assert.Equal(t, []models.ScreeningResult{}, s.LoadResults())
	assert.Equal(t, models.DefaultPreferences(), s.LoadPreferences())
	assert.False(t, s.LoadConsent())
	assert.False(t, s.HasData())
	assert.Empty(t, log.warns, "absent slots are not failures")
}

func TestStorage_MalformedDataFallsBack(t *testing.T) {
	s, b, log := newTestStorage()

	require.NoError(t, b.Set("uniqyou_responses", []byte(`{not json`)))
	require.NoError(t, b.Set("uniqyou_results", []byte(`"a string"`)))
	require.NoError(t, b.Set("uniqyou_preferences", []byte(`[]`)))
	require.NoError(t, b.Set("uniqyou_consent", []byte(`"yes"`)))

	assert.Empty(t, s.LoadResponses())
	assert.Empty(t, s.LoadResults())
	assert.Equal(t, models.DefaultPreferences(), s.LoadPreferences())
	assert.False(t, s.LoadConsent())
	assert.Len(t, log.warns, 4)
	assert.True(t, strings.HasPrefix(log.warns[0], "Discarding malformed responses"))
}

func TestStorage_NullSlotsReadAsEmpty(t *testing.T) {
	s, b, _ := newTestStorage()
	require.NoError(t, b.Set("uniqyou_responses", []byte(`null`)))

	got := s.LoadResponses()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStorage_PartialPreferences(t *testing.T) {
	s, b, _ := newTestStorage()

	require.NoError(t, b.Set("uniqyou_preferences", []byte(`{"allowAIChat":true}`)))
	prefs := s.LoadPreferences()
	assert.True(t, prefs.AllowAIChat)
	assert.Equal(t, models.DarkModeAuto, prefs.DarkMode)

	require.NoError(t, b.Set("uniqyou_preferences", []byte(`{"darkMode":"sepia"}`)))
	assert.Equal(t, models.DarkModeAuto, s.LoadPreferences().DarkMode)
}

func TestStorage_BackendFailuresAreSwallowed(t *testing.T) {
	s, b, log := newTestStorage()
	s.SaveResponses([]models.Response{{QuestionID: "adhd-1", Value: 2}})

	b.SetFailure(errors.New("disk full"))
	s.SaveResponses([]models.Response{{QuestionID: "adhd-1", Value: 4}})
	assert.Empty(t, s.LoadResponses())
	s.ClearAll()
	assert.False(t, s.Exists(SlotResponses))
	assert.NotEmpty(t, log.warns)

	b.SetFailure(nil)
	assert.Equal(t, []models.Response{{QuestionID: "adhd-1", Value: 2}}, s.LoadResponses(),
		"failed save keeps the previous value")
}

func TestStorage_ClearAll(t *testing.T) {
	s, b, _ := newTestStorage()
	s.SaveResponses([]models.Response{{QuestionID: "adhd-1", Value: 1}})
	s.SaveResults([]models.ScreeningResult{{Domain: models.DomainADHD}})
	s.SavePreferences(models.Preferences{AllowAIChat: true, DarkMode: models.DarkModeLight})
	s.SaveConsent(true)

	s.ClearAll()

	for _, slot := range AllSlots {
		assert.False(t, s.Exists(slot), "slot %s should be absent", slot)
	}
	assert.Equal(t, 0, b.Len())
	assert.False(t, s.HasData())
}

func TestStorage_NilSlicesSaveAsEmptyArrays(t *testing.T) {
	s, b, _ := newTestStorage()
	s.SaveResponses(nil)
	s.SaveResults(nil)

	raw, ok, err := b.Get("uniqyou_responses")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))

	raw, _, _ = b.Get("uniqyou_results")
	assert.Equal(t, "[]", string(raw))
}
