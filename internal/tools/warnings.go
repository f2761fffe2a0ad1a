package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	toolWarningSummary = "get_weather_warning_summary"
	toolWarningInfo    = "get_weather_warning_info"
	toolSpecialTips    = "get_special_weather_tips"
)

func (s *Service) registerWarnings(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolWarningSummary,
		mcp.WithDescription("Get weather warning summary for HK with messages and update."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleWarningSummary)

	srv.AddTool(mcp.NewTool(toolWarningInfo,
		mcp.WithDescription("Get detailed weather warning info for HK with statement and update."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleWarningInfo)

	srv.AddTool(mcp.NewTool(toolSpecialTips,
		mcp.WithDescription("Get special weather tips for Hong Kong including tips list and update."),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleSpecialTips)
}

func (s *Service) handleWarningSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.WarningSummary(ctx, langArg(req))
	if err != nil {
		return s.fail(toolWarningSummary, outcomeUpstreamError, err), nil
	}
	return s.raw(toolWarningSummary, payload), nil
}

func (s *Service) handleWarningInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.WarningInfo(ctx, langArg(req))
	if err != nil {
		return s.fail(toolWarningInfo, outcomeUpstreamError, err), nil
	}
	return s.raw(toolWarningInfo, payload), nil
}

func (s *Service) handleSpecialTips(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.SpecialTips(ctx, langArg(req))
	if err != nil {
		return s.fail(toolSpecialTips, outcomeUpstreamError, err), nil
	}
	return s.raw(toolSpecialTips, payload), nil
}
