package app

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/infra"
	"github.com/BigWhaleLabs/coingecko-mcp/internal/infra/coingecko"
	"github.com/BigWhaleLabs/coingecko-mcp/internal/mcpserver"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config *infra.Config
	Server *server.MCPServer
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads config, installs the logger, and assembles the server.
// The upstream credential is verified inside LoadConfig: a missing key
// fails the whole startup, never a later tool call.
func (b *Bootstrap) Initialize() error {
	// 1. Load Config (Dynamic Path Resolution)
	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	infra.PrintBanner(cfg)

	// 3. Upstream client + MCP server
	client := coingecko.NewClient(cfg)
	b.Server = mcpserver.New(client, cfg.App.Name, cfg.App.Version)

	slog.Info("✅ CoinGecko client ready", slog.String("tier", cfg.API.CoinGecko.Tier))
	return nil
}
