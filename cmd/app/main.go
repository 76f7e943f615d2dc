package main

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/app"
)

func main() {
	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Serve MCP over stdio (blocks until the client disconnects)
	slog.Info("✨ CoinGecko MCP server operational on stdio")
	if err := server.ServeStdio(bootstrap.Server); err != nil {
		slog.Error("MCP server failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("👋 Shutting down gracefully...")
}
