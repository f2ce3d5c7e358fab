// Package mcpserver exposes the stored screening state to MCP hosts.
//
// Everything served here is read-only. When the user has not allowed
// results to be shared with an assistant, every handler answers with a
// notice instead of data.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harrison/uniqyou/internal/display"
	"github.com/harrison/uniqyou/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs
const (
	ResultsURI   = "uniqyou://screening/results"
	ResponsesURI = "uniqyou://screening/responses"
)

// SummaryToolName is the name of the summary tool.
const SummaryToolName = "screening_summary"

// SharingDisabledNotice is returned in place of data when sharing is off.
const SharingDisabledNotice = "The user has not allowed screening results to be shared with assistants."

// Store is the subset of storage.Storage the handlers read from.
type Store interface {
	LoadResponses() []models.Response
	LoadResults() []models.ScreeningResult
	LoadPreferences() models.Preferences
}

// Handler serves the uniqyou resources and tools.
type Handler struct {
	store Store
}

// NewHandler creates a Handler backed by store.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// New builds the MCP server with every resource and tool registered.
func New(store Store, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"uniqyou",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	h := NewHandler(store)
	s.AddResource(h.ResultsResource(), h.HandleResults)
	s.AddResource(h.ResponsesResource(), h.HandleResponses)
	s.AddTool(h.SummaryTool(), h.HandleSummary)

	return s
}

// Serve runs the server over stdio until the input closes.
func Serve(store Store, version string) error {
	return server.ServeStdio(New(store, version))
}

const instructions = `uniqyou is a self-screening questionnaire. The results are not a diagnosis.
Read uniqyou://screening/results for per-domain scores and bands, or call screening_summary
for a short text version. Treat the data as context for supportive conversation only.`

func (h *Handler) sharingAllowed() bool {
	return h.store.LoadPreferences().AllowAIChat
}

// ResultsResource returns the resource definition for stored results.
func (h *Handler) ResultsResource() mcp.Resource {
	return mcp.NewResource(
		ResultsURI,
		"Screening Results",
		mcp.WithResourceDescription("Per-domain scores, bands, summaries and tips from the last completed screening"),
		mcp.WithMIMEType("application/json"),
	)
}

// ResponsesResource returns the resource definition for stored responses.
func (h *Handler) ResponsesResource() mcp.Resource {
	return mcp.NewResource(
		ResponsesURI,
		"Screening Responses",
		mcp.WithResourceDescription("Answers recorded so far, in the order they were given"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleResults returns the stored results as JSON.
func (h *Handler) HandleResults(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if !h.sharingAllowed() {
		return noticeResource(req.Params.URI), nil
	}
	return jsonResource(req.Params.URI, h.store.LoadResults())
}

// HandleResponses returns the stored responses as JSON.
func (h *Handler) HandleResponses(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if !h.sharingAllowed() {
		return noticeResource(req.Params.URI), nil
	}
	return jsonResource(req.Params.URI, h.store.LoadResponses())
}

// SummaryTool returns the tool definition for screening_summary.
func (h *Handler) SummaryTool() mcp.Tool {
	return mcp.NewTool(SummaryToolName,
		mcp.WithDescription(
			"Summarize the user's last screening, one line per domain as \"<Label>: <band> (<raw>/<max>)\".",
		),
		mcp.WithString("band",
			mcp.Description("Only include domains in this band"),
			mcp.Enum(string(models.BandLow), string(models.BandModerate), string(models.BandElevated)),
		),
	)
}

// HandleSummary processes a screening_summary call.
func (h *Handler) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.sharingAllowed() {
		return mcp.NewToolResultText(SharingDisabledNotice), nil
	}

	results := h.store.LoadResults()
	if len(results) == 0 {
		return mcp.NewToolResultText("No screening has been completed yet."), nil
	}

	band := strings.TrimSpace(req.GetString("band", ""))
	switch models.Band(band) {
	case "", models.BandLow, models.BandModerate, models.BandElevated:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown band %q", band)), nil
	}

	if band != "" {
		filtered := make([]models.ScreeningResult, 0, len(results))
		for _, r := range results {
			if r.Band == models.Band(band) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No domains in the %s band.", band)), nil
		}
		results = filtered
	}

	return mcp.NewToolResultText(display.ShareText(results)), nil
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func noticeResource(uri string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     SharingDisabledNotice,
		},
	}
}
