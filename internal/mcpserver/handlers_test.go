package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type fakeResponse struct {
	status int
	body   string
	err    error
}

type fakeProvider struct {
	coins    map[string]fakeResponse
	searches map[string]fakeResponse
}

func (f *fakeProvider) FetchCoin(_ context.Context, id string) (int, []byte, error) {
	resp, ok := f.coins[id]
	if !ok {
		return 404, []byte(`{"error":"coin not found"}`), nil
	}
	return resp.status, []byte(resp.body), resp.err
}

func (f *fakeProvider) Search(_ context.Context, query string) (int, []byte, error) {
	resp, ok := f.searches[query]
	if !ok {
		return 200, []byte(`{"coins":[]}`), nil
	}
	return resp.status, []byte(resp.body), resp.err
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

const usdCoinBody = `{"id":"usd-coin","symbol":"usdc","name":"USD Coin","web_slug":"usd-coin","platforms":{"ethereum":"0xA0b8"}}`

func TestHandleGetCoinInfo_ProjectsRecord(t *testing.T) {
	h := NewHandlers(&fakeProvider{
		coins: map[string]fakeResponse{
			"usd-coin": {status: 200, body: usdCoinBody},
		},
		searches: map[string]fakeResponse{
			"USDC": {status: 200, body: `{"coins":[{"id":"usd-coin","name":"USD Coin","symbol":"usdc"}]}`},
		},
	})

	result, err := h.HandleGetCoinInfo(context.Background(), callRequest("get_coin_info", map[string]any{"query": "USDC"}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}

	// Projection completeness: exactly these five fields.
	want := []string{"id", "symbol", "name", "web_slug", "platforms"}
	if len(payload) != len(want) {
		t.Errorf("payload has %d fields, want %d: %v", len(payload), len(want), payload)
	}
	for _, field := range want {
		if _, ok := payload[field]; !ok {
			t.Errorf("payload missing field %q", field)
		}
	}
	if payload["id"] != "usd-coin" {
		t.Errorf("id = %v, want usd-coin", payload["id"])
	}
}

func TestHandleGetCoinInfo_FailureNamesQuery(t *testing.T) {
	h := NewHandlers(&fakeProvider{})

	result, err := h.HandleGetCoinInfo(context.Background(), callRequest("get_coin_info", map[string]any{"query": "ghost coin"}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unresolvable query")
	}
	if msg := resultText(t, result); !strings.Contains(msg, `"ghost coin"`) {
		t.Errorf("error message %q does not name the query", msg)
	}
}

func TestHandleGetCoinInfo_MissingArgument(t *testing.T) {
	h := NewHandlers(&fakeProvider{})

	result, err := h.HandleGetCoinInfo(context.Background(), callRequest("get_coin_info", map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing query argument")
	}
}

func TestHandleSearchCoingeckoID_UsesResolutionProtocol(t *testing.T) {
	// The record must come from the confirmed detail fetch, never from the
	// search hit itself (search hits carry no web_slug or platforms).
	h := NewHandlers(&fakeProvider{
		coins: map[string]fakeResponse{
			"usd-coin": {status: 200, body: usdCoinBody},
		},
		searches: map[string]fakeResponse{
			"usdc": {status: 200, body: `{"coins":[{"id":"usd-coin","name":"USD Coin","symbol":"usdc"}]}`},
		},
	})

	result, err := h.HandleSearchCoingeckoID(context.Background(), callRequest("search_coingecko_id", map[string]any{"query": "usdc"}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload["web_slug"] != "usd-coin" {
		t.Errorf("web_slug = %v, want value from the detail record", payload["web_slug"])
	}
}

func TestHandleGetTokenInfo_PassesRawSearchBody(t *testing.T) {
	raw := `{"coins":[{"id":"usd-coin","name":"USD Coin","symbol":"usdc","market_cap_rank":6}],"exchanges":[]}`
	h := NewHandlers(&fakeProvider{
		searches: map[string]fakeResponse{
			"usdc": {status: 200, body: raw},
		},
	})

	result, err := h.HandleGetTokenInfo(context.Background(), callRequest("get_token_info", map[string]any{"query": "usdc"}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if got := resultText(t, result); got != raw {
		t.Errorf("body altered: got %s", got)
	}
}

func TestHandleGetCoinData(t *testing.T) {
	raw := `{"id":"bitcoin","market_data":{"current_price":{"usd":97000}}}`
	provider := &fakeProvider{
		coins: map[string]fakeResponse{
			"bitcoin": {status: 200, body: raw},
		},
	}

	for _, tt := range []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{"get_coin_data", NewHandlers(provider).HandleGetCoinData},
		{"get_coin_data_by_coingecko_id", NewHandlers(provider).HandleGetCoinDataByCoingeckoID},
	} {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(context.Background(), callRequest(tt.name, map[string]any{"id": "bitcoin"}))
			if err != nil {
				t.Fatalf("handler returned raw error: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected tool error: %s", resultText(t, result))
			}
			if got := resultText(t, result); got != raw {
				t.Errorf("body altered: got %s", got)
			}
		})
	}
}

func TestHandleGetCoinData_UpstreamFailure(t *testing.T) {
	h := NewHandlers(&fakeProvider{
		coins: map[string]fakeResponse{
			"bitcoin": {status: 500, body: `upstream exploded`},
		},
	})

	result, err := h.HandleGetCoinData(context.Background(), callRequest("get_coin_data", map[string]any{"id": "bitcoin"}))
	if err != nil {
		t.Fatalf("handler returned raw error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for upstream 500")
	}
	msg := resultText(t, result)
	if !strings.Contains(msg, "500") || !strings.Contains(msg, `"bitcoin"`) {
		t.Errorf("error message %q should name the id and status", msg)
	}
}
