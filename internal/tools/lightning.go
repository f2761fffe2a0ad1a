package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const toolLightning = "get_lightning_data"

func (s *Service) registerLightning(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(toolLightning,
		mcp.WithDescription("Get cloud-to-ground and cloud-to-cloud lightning count data"),
		mcp.WithString("lang",
			mcp.Description("Language code (en/tc/sc, default: en)"),
			mcp.Enum("en", "tc", "sc"),
		),
	), s.handleLightning)
}

func (s *Service) handleLightning(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.client.LightningData(ctx, langArg(req))
	if err != nil {
		return s.fail(toolLightning, outcomeUpstreamError, err), nil
	}
	return s.raw(toolLightning, payload), nil
}
