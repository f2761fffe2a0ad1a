package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	toolNineDayForecast = "get_9_day_weather_forecast"
	toolLocalForecast   = "get_local_weather_forecast"
)

func (s *Service) registerForecast(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolNineDayForecast,
		mcp.WithDescription("Get 9-day weather forecast for HK with general situation, daily data."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleNineDayForecast)

	srv.AddTool(mcp.NewTool(toolLocalForecast,
		mcp.WithDescription("Get local weather forecast for HK with description, outlook, update."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleLocalForecast)
}

func (s *Service) handleNineDayForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.NineDayForecast(ctx, langArg(req))
	if err != nil {
		return s.fail(toolNineDayForecast, outcomeUpstreamError, err), nil
	}
	return s.raw(toolNineDayForecast, payload), nil
}

func (s *Service) handleLocalForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.LocalForecast(ctx, langArg(req))
	if err != nil {
		return s.fail(toolLocalForecast, outcomeUpstreamError, err), nil
	}
	return s.raw(toolLocalForecast, payload), nil
}
