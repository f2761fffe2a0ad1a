package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/domain"
)

const (
	toolRadiationReport       = "get_weather_radiation_report"
	toolRadiationStationCodes = "get_radiation_station_codes"
)

func (s *Service) registerRadiation(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolRadiationReport,
		mcp.WithDescription("Get weather, radiation report for HK. Date must be YYYYMMDD."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date in yyyyMMdd format, e.g., 20250618"),
		),
		mcp.WithString("station",
			mcp.Required(),
			mcp.Description("Station code, e.g., HKO"),
		),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleRadiationReport)

	srv.AddTool(mcp.NewTool(toolRadiationStationCodes,
		mcp.WithDescription("Get list of weather station codes and names for radiation reports in HK."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleRadiationStationCodes)
}

func (s *Service) handleRadiationReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	station, err := req.RequireString("station")
	if err != nil {
		return s.fail(toolRadiationReport, outcomeValidationError, err), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return s.fail(toolRadiationReport, outcomeValidationError, err), nil
	}
	lang := langArg(req)

	if err := domain.ValidateStation(domain.DomainRadiation, station, lang); err != nil {
		return s.fail(toolRadiationReport, outcomeValidationError,
			fmt.Errorf("%w. Use '%s' to list valid codes", err, toolRadiationStationCodes)), nil
	}
	if err := domain.ValidateReportDate(date); err != nil {
		return s.fail(toolRadiationReport, outcomeValidationError, err), nil
	}

	payload, err := s.client.RadiationReport(ctx, date, station, lang)
	if err != nil {
		return s.fail(toolRadiationReport, outcomeUpstreamError, err), nil
	}
	return s.raw(toolRadiationReport, payload), nil
}

func (s *Service) handleRadiationStationCodes(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.ok(toolRadiationStationCodes, domain.StationNames(domain.DomainRadiation, langArg(req))), nil
}
