package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/resolve"
)

// Handlers implements the tool handlers over a coin-data provider.
// Every outcome crosses the tool boundary as a structured result: success
// carries a JSON text body, failure carries the error flag with a message
// naming the input and the cause. No fault leaves as a raw Go error.
type Handlers struct {
	provider resolve.Provider
	resolver *resolve.Resolver
}

// NewHandlers wires handlers to a provider. The resolver shares the same
// provider so test doubles stand in for both passthrough and resolution.
func NewHandlers(p resolve.Provider) *Handlers {
	return &Handlers{
		provider: p,
		resolver: resolve.New(p),
	}
}

// HandleGetCoinInfo resolves a loose query to a projected coin record.
func (h *Handlers) HandleGetCoinInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.resolveToRecord(ctx, req, "get_coin_info")
}

// HandleSearchCoingeckoID resolves a name or symbol to its canonical id.
// It runs the same lookup-then-search protocol as get_coin_info: a search
// hit alone carries no web_slug or platforms, so the record always comes
// from a confirmed detail fetch.
func (h *Handlers) HandleSearchCoingeckoID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.resolveToRecord(ctx, req, "search_coingecko_id")
}

func (h *Handlers) resolveToRecord(ctx context.Context, req mcp.CallToolRequest, tool string) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	record, err := h.resolver.Resolve(ctx, query)
	if err != nil {
		slog.Warn("resolution failed",
			slog.String("tool", tool),
			slog.String("query", query),
			slog.Any("error", err),
		)
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", tool, err)), nil
	}

	out, err := json.Marshal(record)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: encoding record for %q: %v", tool, query, err)), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

// HandleGetTokenInfo passes the raw search response through unfiltered.
func (h *Handlers) HandleGetTokenInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, body, err := h.provider.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get_token_info: search for %q failed: %v", query, err)), nil
	}
	if status < 200 || status >= 300 {
		return mcp.NewToolResultError(fmt.Sprintf("get_token_info: search for %q failed with status %d: %s", query, status, body)), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}

// HandleGetCoinData passes the raw coin-detail response through unfiltered.
func (h *Handlers) HandleGetCoinData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.fetchRaw(ctx, req, "get_coin_data")
}

// HandleGetCoinDataByCoingeckoID is the same fetch under the name agents
// reach for after search_coingecko_id. Both stay registered.
func (h *Handlers) HandleGetCoinDataByCoingeckoID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.fetchRaw(ctx, req, "get_coin_data_by_coingecko_id")
}

func (h *Handlers) fetchRaw(ctx context.Context, req mcp.CallToolRequest, tool string) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, body, err := h.provider.FetchCoin(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: fetching %q failed: %v", tool, id, err)), nil
	}
	if status < 200 || status >= 300 {
		return mcp.NewToolResultError(fmt.Sprintf("%s: fetching %q failed with status %d: %s", tool, id, status, body)), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
