package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/harrison/uniqyou/internal/config"
)

const minAPIKeyLength = 30

// generateRequest is the JSON body of a generateContent call.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// APIError is a non-2xx reply from the model API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Body)
}

// HTTPBackend calls a generateContent-style model API.
type HTTPBackend struct {
	config     config.AssistantConfig
	httpClient *http.Client
}

// NewHTTPBackend creates an HTTPBackend. The HTTP client timeout is set from
// the config.
func NewHTTPBackend(cfg config.AssistantConfig) *HTTPBackend {
	return &HTTPBackend{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Ready checks the API key shape.
func (b *HTTPBackend) Ready() error {
	key := b.config.APIKey
	if key == "" {
		return ErrNoAPIKey
	}
	if !strings.HasPrefix(key, "AIza") || len(key) < minAPIKeyLength {
		return ErrInvalidAPIKey
	}
	return nil
}

func (b *HTTPBackend) modelURL(model string) string {
	endpoint := strings.TrimRight(b.config.Endpoint, "/")
	return fmt.Sprintf("%s/%s:generateContent?%s", endpoint, model, url.Values{"key": {b.config.APIKey}}.Encode())
}

// Generate posts req to the configured model, retrying once against the
// fallback model when the primary is not found.
func (b *HTTPBackend) Generate(ctx context.Context, req Request) (string, error) {
	if err := b.Ready(); err != nil {
		return "", err
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}
	if !req.Probe {
		body.GenerationConfig.TopK = 40
		body.GenerationConfig.TopP = 0.95
		body.SafetySettings = defaultSafetySettings
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	data, err := b.post(ctx, b.config.Model, payload)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound &&
		b.config.FallbackModel != "" && b.config.FallbackModel != b.config.Model {
		data, err = b.post(ctx, b.config.FallbackModel, payload)
	}
	if err != nil {
		return "", err
	}

	if req.Probe {
		return "", nil
	}

	var resp generateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrInvalidResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (b *HTTPBackend) post(ctx context.Context, model string, payload []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.modelURL(model), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}
