package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/domain"
)

const toolCurrentWeather = "get_current_weather"

func (s *Service) registerCurrentWeather(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolCurrentWeather,
		mcp.WithDescription("Get current weather data, warnings, temp, humidity in HK from HKO."),
		mcp.WithString("region",
			mcp.Description("The region to get weather for (default: Hong Kong Observatory)"),
		),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleCurrentWeather)
}

func (s *Service) handleCurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := req.GetString("region", domain.DefaultPlace)
	lang := langArg(req)

	raw, err := s.client.CurrentWeather(ctx, lang)
	if err != nil {
		return s.fail(toolCurrentWeather, outcomeUpstreamError, err), nil
	}

	normalized, err := domain.ReconcileCurrentWeather(raw, region)
	if err != nil {
		return s.fail(toolCurrentWeather, outcomeUpstreamError, err), nil
	}

	return s.ok(toolCurrentWeather, normalized), nil
}
