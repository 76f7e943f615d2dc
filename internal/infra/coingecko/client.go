package coingecko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/infra"
)

// Base URLs per API tier. The demo tier lives on the public host and uses a
// different credential header.
const (
	ProBaseURL  = "https://pro-api.coingecko.com/api/v3"
	DemoBaseURL = "https://api.coingecko.com/api/v3"

	proKeyHeader  = "x-cg-pro-api-key"
	demoKeyHeader = "x-cg-demo-api-key"

	defaultUserAgent = "coingecko-mcp/1.0"
)

// Client handles CoinGecko REST API communication. The credential is fixed
// at construction and attached to every request; it is never re-read from
// the environment afterwards.
type Client struct {
	baseURL    string
	apiKey     string
	keyHeader  string
	httpClient *http.Client
}

// NewClient creates a CoinGecko REST client from config. The API tier
// selects base URL and credential header; an explicit rest_url wins over
// the tier default (also how tests point the client at a local server).
func NewClient(cfg *infra.Config) *Client {
	baseURL := ProBaseURL
	keyHeader := proKeyHeader
	if cfg.API.CoinGecko.Tier == infra.TierDemo {
		baseURL = DemoBaseURL
		keyHeader = demoKeyHeader
	}
	if cfg.API.CoinGecko.RestURL != "" {
		baseURL = cfg.API.CoinGecko.RestURL
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    cfg.API.CoinGecko.APIKey,
		keyHeader: keyHeader,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCoin requests the coin-detail record for a canonical id.
// Status and raw body are returned as-is for any HTTP outcome; err is
// reserved for transport-level failures (dial, timeout, cancellation).
func (c *Client) FetchCoin(ctx context.Context, id string) (int, []byte, error) {
	return c.get(ctx, c.baseURL+"/coins/"+url.PathEscape(id))
}

// Search requests the fuzzy-search candidates for a free-form query.
// The query is URL-encoded for transport but otherwise untouched: no
// trimming, no case-folding.
func (c *Client) Search(ctx context.Context, query string) (int, []byte, error) {
	return c.get(ctx, c.baseURL+"/search?query="+url.QueryEscape(query))
}

func (c *Client) get(ctx context.Context, rawURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set(c.keyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
