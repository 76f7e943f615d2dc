package infra

import (
	"fmt"
	"os"
	"strings"
)

// ANSI Color Codes
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// PrintBanner displays the startup banner with the active API tier.
// Written to stderr: stdout is reserved for the MCP protocol stream.
func PrintBanner(cfg *Config) {
	tier := strings.ToUpper(cfg.API.CoinGecko.Tier)
	version := cfg.App.Version

	color := ColorGreen
	tierDesc := "COINGECKO PRO API"
	if cfg.API.CoinGecko.Tier == TierDemo {
		color = ColorYellow
		tierDesc = "COINGECKO DEMO API (RATE-LIMITED)"
	}

	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s###########################################################%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#              🦎 CoinGecko MCP Server                    #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#   TIER:    %-36s #%s\n", color, tier, ColorReset)
	fmt.Fprintf(w, "%s#   API:     %-36s #%s\n", color, tierDesc, ColorReset)
	fmt.Fprintf(w, "%s#   VERSION: %-36s #%s\n", color, version, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s###########################################################%s\n", color, ColorReset)
	fmt.Fprintln(w)
}
