package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/resolve"
)

// New creates a configured MCP server with all CoinGecko tools registered.
func New(p resolve.Provider, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version)
	h := NewHandlers(p)

	s.AddTool(ToolGetCoinInfo, h.HandleGetCoinInfo)
	s.AddTool(ToolGetTokenInfo, h.HandleGetTokenInfo)
	s.AddTool(ToolGetCoinData, h.HandleGetCoinData)
	s.AddTool(ToolSearchCoingeckoID, h.HandleSearchCoingeckoID)
	s.AddTool(ToolGetCoinDataByCoingeckoID, h.HandleGetCoinDataByCoingeckoID)

	return s
}
