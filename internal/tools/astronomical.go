package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	toolMoonTimes     = "get_moon_times"
	toolSunTimes      = "get_sunrise_sunset_times"
	toolLunarCalendar = "get_gregorian_lunar_calendar"
)

func (s *Service) registerAstronomical(srv *server.MCPServer) {
	srv.AddTool(astroTool(toolMoonTimes,
		"Get times of moonrise, moon transit and moonset"), s.handleMoonTimes)

	srv.AddTool(astroTool(toolSunTimes,
		"Get times of sunrise, sun transit and sunset for Hong Kong"), s.handleSunTimes)

	srv.AddTool(astroTool(toolLunarCalendar,
		"Get Gregorian-Lunar calendar conversion data"), s.handleLunarCalendar)
}

// astroTool declares the shared year/month/day input schema of the
// astronomical datasets.
func astroTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Year, e.g., 2024"),
		),
		mcp.WithNumber("month", mcp.Description("Optional month (1-12)")),
		mcp.WithNumber("day", mcp.Description("Optional day (1-31)")),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	)
}

type astroFetch func(ctx context.Context, lang string, year, month, day int) (json.RawMessage, error)

func (s *Service) handleMoonTimes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleAstro(ctx, req, toolMoonTimes, s.client.MoonTimes)
}

func (s *Service) handleSunTimes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleAstro(ctx, req, toolSunTimes, s.client.SunriseSunsetTimes)
}

func (s *Service) handleLunarCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleAstro(ctx, req, toolLunarCalendar, func(ctx context.Context, _ string, year, month, day int) (json.RawMessage, error) {
		// lunardate.php takes a single collapsed date and no language.
		return s.client.GregorianLunarCalendar(ctx, year, month, day)
	})
}

func (s *Service) handleAstro(ctx context.Context, req mcp.CallToolRequest, tool string, fetch astroFetch) (*mcp.CallToolResult, error) {
	year, err := req.RequireInt("year")
	if err != nil {
		return s.fail(tool, outcomeValidationError, err), nil
	}

	payload, err := fetch(ctx, langArg(req), year, req.GetInt("month", 0), req.GetInt("day", 0))
	if err != nil {
		return s.fail(tool, outcomeUpstreamError, err), nil
	}
	return s.raw(tool, payload), nil
}
