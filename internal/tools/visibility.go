package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const toolVisibility = "get_visibility"

func (s *Service) registerVisibility(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolVisibility,
		mcp.WithDescription("Get latest 10-minute mean visibility data for Hong Kong"),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleVisibility)
}

func (s *Service) handleVisibility(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.Visibility(ctx, langArg(req))
	if err != nil {
		return s.fail(toolVisibility, outcomeUpstreamError, err), nil
	}
	return s.raw(toolVisibility, payload), nil
}
