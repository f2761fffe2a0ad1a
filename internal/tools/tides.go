package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/hko"
	"github.com/couchcryptid/hko-weather-mcp/internal/domain"
)

const (
	toolHourlyTides      = "get_hourly_tides"
	toolHighLowTides     = "get_high_low_tides"
	toolTideStationCodes = "get_tide_station_codes"
)

func (s *Service) registerTides(srv *server.MCPServer) {
	srv.AddTool(tideTool(toolHourlyTides,
		"Get hourly heights of astronomical tides for a station in HK."), s.handleHourlyTides)

	srv.AddTool(tideTool(toolHighLowTides,
		"Get times, heights of astronomical high/low tides for a station in HK."), s.handleHighLowTides)

	srv.AddTool(mcp.NewTool(toolTideStationCodes,
		mcp.WithDescription("Get list of tide station codes and names for tide reports in HK."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleTideStationCodes)
}

// tideTool declares the shared input schema of the two tide datasets.
func tideTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("station",
			mcp.Required(),
			mcp.Description("Station code, e.g., CCH for Cheung Chau"),
		),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Year, e.g., 2024"),
		),
		mcp.WithNumber("month", mcp.Description("Optional month (1-12)")),
		mcp.WithNumber("day", mcp.Description("Optional day (1-31)")),
		mcp.WithNumber("hour", mcp.Description("Optional hour (1-24)")),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	)
}

type tideFetch func(ctx context.Context, station, lang string, period hko.PeriodOptions) (json.RawMessage, error)

func (s *Service) handleHourlyTides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleTides(ctx, req, toolHourlyTides, s.client.HourlyTides)
}

func (s *Service) handleHighLowTides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleTides(ctx, req, toolHighLowTides, s.client.HighLowTides)
}

func (s *Service) handleTides(ctx context.Context, req mcp.CallToolRequest, tool string, fetch tideFetch) (*mcp.CallToolResult, error) {
	station, err := req.RequireString("station")
	if err != nil {
		return s.fail(tool, outcomeValidationError, err), nil
	}
	year, err := req.RequireInt("year")
	if err != nil {
		return s.fail(tool, outcomeValidationError, err), nil
	}
	lang := langArg(req)

	if err := domain.ValidateStation(domain.DomainTide, station, lang); err != nil {
		return s.fail(tool, outcomeValidationError,
			fmt.Errorf("%w. Use '%s' to list valid codes", err, toolTideStationCodes)), nil
	}

	// Month/day/hour ranges are deliberately not checked locally; invalid
	// values are forwarded and surface as upstream decode failures.
	period := hko.PeriodOptions{
		Year:  year,
		Month: req.GetInt("month", 0),
		Day:   req.GetInt("day", 0),
		Hour:  req.GetInt("hour", 0),
	}

	payload, err := fetch(ctx, station, lang, period)
	if err != nil {
		return s.fail(tool, outcomeUpstreamError, err), nil
	}
	return s.raw(tool, payload), nil
}

func (s *Service) handleTideStationCodes(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.ok(toolTideStationCodes, domain.StationNames(domain.DomainTide, langArg(req))), nil
}
