// Command hko-mcp serves Hong Kong Observatory open-data weather endpoints
// as MCP tools, over stdio by default or Streamable HTTP when configured.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/hko"
	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/httpserver"
	"github.com/couchcryptid/hko-weather-mcp/internal/config"
	"github.com/couchcryptid/hko-weather-mcp/internal/observability"
	"github.com/couchcryptid/hko-weather-mcp/internal/tools"
)

const (
	serverName    = "hko-weather"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := hko.NewClient(cfg.HKOBaseURL, cfg.HKOTimeout, logger, metrics)
	svc := tools.NewService(client, logger, metrics)

	srv := mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	tools.Register(srv, svc)

	if cfg.Transport == config.TransportStdio {
		logger.Info("mcp server starting on stdio")
		if err := mcpserver.ServeStdio(srv); err != nil {
			logger.Error("stdio server error", "error", err)
			os.Exit(1)
		}
		return
	}

	runHTTP(cfg, srv, logger)
}

func runHTTP(cfg *config.Config, srv *mcpserver.MCPServer, logger *slog.Logger) {
	streamable := mcpserver.NewStreamableHTTPServer(srv)
	httpSrv := httpserver.NewServer(cfg.HTTPAddr, streamable, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
