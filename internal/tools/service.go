// Package tools registers the Hong Kong Observatory datasets as MCP tools.
//
// Every tool returns a JSON text payload. Failures of any kind are surfaced
// as a {"error": "..."} payload rather than a protocol-level fault, so
// callers check for an error key in every response.
package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/hko"
	"github.com/couchcryptid/hko-weather-mcp/internal/observability"
)

// Tool call outcome labels for metrics.
const (
	outcomeOK              = "ok"
	outcomeValidationError = "validation_error"
	outcomeUpstreamError   = "upstream_error"
)

// Service holds the collaborators shared by all tool handlers.
type Service struct {
	client  *hko.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewService creates the tool service.
func NewService(client *hko.Client, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{client: client, logger: logger, metrics: metrics}
}

// Register adds every HKO tool to the MCP server.
func Register(srv *server.MCPServer, svc *Service) {
	svc.registerCurrentWeather(srv)
	svc.registerForecast(srv)
	svc.registerWarnings(srv)
	svc.registerRadiation(srv)
	svc.registerTides(srv)
	svc.registerTemperature(srv)
	svc.registerAstronomical(srv)
	svc.registerVisibility(srv)
	svc.registerLightning(srv)
}

// errorPayload is the uniform failure shape for every tool.
type errorPayload struct {
	Error string `json:"error"`
}

// ok marshals a successful payload into a JSON text result.
func (s *Service) ok(tool string, v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return s.fail(tool, outcomeUpstreamError, fmt.Errorf("marshal %s result: %w", tool, err))
	}
	s.metrics.ToolCalls.WithLabelValues(tool, outcomeOK).Inc()
	return mcp.NewToolResultText(string(data))
}

// raw wraps an upstream pass-through payload without re-encoding it.
func (s *Service) raw(tool string, payload json.RawMessage) *mcp.CallToolResult {
	s.metrics.ToolCalls.WithLabelValues(tool, outcomeOK).Inc()
	return mcp.NewToolResultText(string(payload))
}

// fail converts any failure into the {"error": "..."} payload.
func (s *Service) fail(tool, outcome string, err error) *mcp.CallToolResult {
	s.metrics.ToolCalls.WithLabelValues(tool, outcome).Inc()
	s.logger.Warn("tool call failed", "tool", tool, "outcome", outcome, "error", err)

	data, marshalErr := json.Marshal(errorPayload{Error: err.Error()})
	if marshalErr != nil {
		data = []byte(`{"error": "internal error"}`)
	}
	return mcp.NewToolResultText(string(data))
}

// langArg reads the optional language argument, defaulting to English. The
// literal value is forwarded upstream even when unrecognized; only station
// name lookups degrade to English.
func langArg(req mcp.CallToolRequest) string {
	return req.GetString("lang", "en")
}
