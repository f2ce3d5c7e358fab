package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/harrison/uniqyou/internal/models"
)

// Welcome message variants
const (
	WelcomeOffline     = "Hello! I'm Dr. Sarah Chen, a clinical psychologist specializing in neurodevelopmental disorders. I'm currently using offline responses due to technical difficulties, but I can still provide helpful information and strategies. What would you like to know more about?"
	WelcomeWithResults = "Hello! I'm Dr. Sarah Chen, a clinical psychologist specializing in neurodevelopmental disorders. I can see you've completed a screening and I'm here to help you understand your results and explore helpful strategies. What would you like to know more about?"
	WelcomeDefault     = "Hello! I'm Dr. Sarah Chen, a clinical psychologist specializing in neurodevelopmental disorders. I'm here to provide you with professional guidance and support. Feel free to ask me anything, or consider taking a screening for more personalized help."
)

// WelcomeMessage picks the greeting for the session state.
func WelcomeMessage(online bool, c Context) string {
	switch {
	case !online:
		return WelcomeOffline
	case len(c.Results) > 0 && c.Preferences.AllowAIChat:
		return WelcomeWithResults
	default:
		return WelcomeDefault
	}
}

// Transcript is the in-memory history of one chat session. It is not
// persisted.
type Transcript struct {
	messages []models.ChatMessage
	now      func() time.Time
}

// NewTranscript starts a transcript with the welcome message.
func NewTranscript(welcome string) *Transcript {
	t := &Transcript{now: time.Now}
	if welcome != "" {
		t.Add(models.RoleAssistant, welcome)
	}
	return t
}

// Add appends a message and returns it.
func (t *Transcript) Add(role, content string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: t.now(),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of the history in order.
func (t *Transcript) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear drops every message except a fresh welcome.
func (t *Transcript) Clear(welcome string) {
	t.messages = nil
	if welcome != "" {
		t.Add(models.RoleAssistant, welcome)
	}
}
