package logger

import "github.com/harrison/uniqyou/internal/models"

// Sink is the full set of methods every logger in this package implements.
type Sink interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogCompletion(results []models.ScreeningResult)
}

// MultiLogger fans every call out to all of its sinks.
type MultiLogger struct {
	sinks []Sink
}

// NewMultiLogger combines sinks; nil entries are skipped.
func NewMultiLogger(sinks ...Sink) *MultiLogger {
	m := &MultiLogger{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, s := range m.sinks {
		s.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, s := range m.sinks {
		s.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, s := range m.sinks {
		s.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, s := range m.sinks {
		s.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, s := range m.sinks {
		s.LogError(message)
	}
}

func (m *MultiLogger) LogCompletion(results []models.ScreeningResult) {
	for _, s := range m.sinks {
		s.LogCompletion(results)
	}
}

var (
	_ Sink = (*ConsoleLogger)(nil)
	_ Sink = (*FileLogger)(nil)
	_ Sink = (*NoOpLogger)(nil)
	_ Sink = (*MultiLogger)(nil)
)
