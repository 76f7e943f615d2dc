package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the CoinGecko MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolGetCoinInfo = mcp.NewTool("get_coin_info",
	mcp.WithDescription(
		"Look up a cryptocurrency by name, symbol, or CoinGecko id and return its "+
			"canonical record: id, symbol, name, web_slug, and contract platforms. "+
			"Falls back to fuzzy search when the query is not an exact id."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Coin name, ticker symbol, or CoinGecko id (e.g. 'USDC', 'Bitcoin', 'usd-coin')")),
)

var ToolGetTokenInfo = mcp.NewTool("get_token_info",
	mcp.WithDescription(
		"Search CoinGecko for coins, exchanges, and categories matching a query. "+
			"Returns the raw search response, useful when multiple candidates matter."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Free-text search query (e.g. a token name or symbol)")),
)

var ToolGetCoinData = mcp.NewTool("get_coin_data",
	mcp.WithDescription(
		"Fetch the full CoinGecko coin-detail record for a known canonical id. "+
			"Returns the raw, unfiltered JSON payload."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Canonical CoinGecko id (e.g. 'usd-coin', 'bitcoin')")),
)

var ToolSearchCoingeckoID = mcp.NewTool("search_coingecko_id",
	mcp.WithDescription(
		"Resolve a coin name or symbol to its canonical CoinGecko id and return "+
			"the confirmed record: id, symbol, name, web_slug, and platforms."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Coin name or ticker symbol to resolve")),
)

var ToolGetCoinDataByCoingeckoID = mcp.NewTool("get_coin_data_by_coingecko_id",
	mcp.WithDescription(
		"Fetch the full CoinGecko coin-detail record for a canonical id obtained "+
			"from search_coingecko_id. Returns the raw, unfiltered JSON payload."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Canonical CoinGecko id (e.g. 'usd-coin')")),
)
