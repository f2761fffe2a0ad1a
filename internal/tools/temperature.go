package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/hko"
)

const (
	toolDailyMeanTemp = "get_daily_mean_temperature"
	toolDailyMaxTemp  = "get_daily_max_temperature"
	toolDailyMinTemp  = "get_daily_min_temperature"
)

func (s *Service) registerTemperature(srv *server.MCPServer) {
	srv.AddTool(temperatureTool(toolDailyMeanTemp,
		"Get daily mean temperature data for a specific station in Hong Kong"), s.temperatureHandler(toolDailyMeanTemp, hko.TempMean))

	srv.AddTool(temperatureTool(toolDailyMaxTemp,
		"Get daily maximum temperature data for a specific station in Hong Kong"), s.temperatureHandler(toolDailyMaxTemp, hko.TempMax))

	srv.AddTool(temperatureTool(toolDailyMinTemp,
		"Get daily minimum temperature data for a specific station in Hong Kong"), s.temperatureHandler(toolDailyMinTemp, hko.TempMin))
}

// temperatureTool declares the shared input schema of the three daily
// temperature datasets. Station codes for these climatology series vary by
// station history, so they are not checked against a local enumeration.
func temperatureTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("station",
			mcp.Required(),
			mcp.Description("Station code, e.g., HKO for Hong Kong Observatory"),
		),
		mcp.WithNumber("year", mcp.Description("Optional year (availability varies by station)")),
		mcp.WithNumber("month", mcp.Description("Optional month (1-12)")),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	)
}

func (s *Service) temperatureHandler(tool string, stat hko.TemperatureStat) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		station, err := req.RequireString("station")
		if err != nil {
			return s.fail(tool, outcomeValidationError, err), nil
		}

		payload, err := s.client.DailyTemperature(ctx, stat, station, langArg(req),
			req.GetInt("year", 0), req.GetInt("month", 0))
		if err != nil {
			return s.fail(tool, outcomeUpstreamError, err), nil
		}
		return s.raw(tool, payload), nil
	}
}
