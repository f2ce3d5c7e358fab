// Package assistant implements the conversational helper that can discuss a
// user's screening results.
//
// A Client is an explicit object built from config; it holds the shared
// context and talks to a Backend (an HTTP model API or a local command).
// When the backend is unusable every question still gets a keyword-matched
// canned reply, flagged Offline.
package assistant

import (
	"context"
	"fmt"
	"sync"

	"github.com/harrison/uniqyou/internal/config"
	"github.com/harrison/uniqyou/internal/models"
)

// Context is the screening data the assistant may reference. Results and
// responses are only used when Preferences.AllowAIChat is set.
type Context struct {
	Results     []models.ScreeningResult
	Responses   []models.Response
	Preferences models.Preferences
}

// Reply is one assistant answer.
type Reply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Resources   []string `json:"resources,omitempty"`
	Offline     bool     `json:"offline"` // Canned reply, backend not used
}

// Logger receives assistant diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Client answers questions with optional screening context.
type Client struct {
	config    config.AssistantConfig
	backend   Backend
	questions QuestionLookup
	logger    Logger

	mu      sync.Mutex
	context Context

	once      sync.Once
	available bool
}

// NewClient creates a client over an explicit backend.
func NewClient(cfg config.AssistantConfig, backend Backend, questions QuestionLookup, logger Logger) *Client {
	return &Client{
		config:    cfg,
		backend:   backend,
		questions: questions,
		logger:    logger,
	}
}

// New creates a client with the backend named in cfg.
func New(cfg config.AssistantConfig, questions QuestionLookup, logger Logger) (*Client, error) {
	var backend Backend
	switch cfg.Backend {
	case "", "http":
		backend = NewHTTPBackend(cfg)
	case "command":
		backend = NewCommandBackend(cfg)
	default:
		return nil, fmt.Errorf("unknown assistant backend %q", cfg.Backend)
	}
	return NewClient(cfg, backend, questions, logger), nil
}

func (c *Client) debug(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.LogDebug(fmt.Sprintf(format, args...))
	}
}

func (c *Client) warn(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.LogWarn(fmt.Sprintf(format, args...))
	}
}

// SetContext replaces the screening context used for later questions.
func (c *Client) SetContext(ctx Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.context = ctx
}

// Context returns the current screening context.
func (c *Client) Context() Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.context
}

// SystemPrompt renders the prompt preamble for the current context.
func (c *Client) SystemPrompt() string {
	return buildSystemPrompt(c.Context(), c.questions)
}

// TestConnection sends a small probe request to the backend.
func (c *Client) TestConnection(ctx context.Context) error {
	if !c.config.Enabled {
		return fmt.Errorf("assistant is disabled")
	}
	if err := c.backend.Ready(); err != nil {
		return err
	}
	_, err := c.backend.Generate(ctx, Request{
		Prompt:          "Hello, this is a test message.",
		Temperature:     0.1,
		MaxOutputTokens: 50,
		Probe:           true,
	})
	return err
}

// Available reports whether the backend answered a probe. The probe runs
// once per client and the result is cached.
func (c *Client) Available(ctx context.Context) bool {
	c.once.Do(func() {
		err := c.TestConnection(ctx)
		if err != nil {
			c.debug("Assistant unavailable: %v", err)
		}
		c.available = err == nil
	})
	return c.available
}

// Ask answers message. Backend failures are logged and answered with a
// canned reply instead; Ask never fails.
func (c *Client) Ask(ctx context.Context, message string) Reply {
	if !c.config.Enabled {
		return offlineReply(message)
	}
	if err := c.backend.Ready(); err != nil {
		c.debug("Assistant backend not ready: %v", err)
		return offlineReply(message)
	}

	prompt := buildUserPrompt(c.SystemPrompt(), message)
	text, err := c.backend.Generate(ctx, Request{
		Prompt:          prompt,
		Temperature:     c.config.Temperature,
		MaxOutputTokens: c.config.MaxOutputTokens,
	})
	if err != nil {
		c.warn("Assistant request failed, using offline reply: %v", err)
		return offlineReply(message)
	}

	return Reply{
		Message:     text,
		Suggestions: extractSuggestions(text),
		Resources:   extractResources(text),
	}
}
