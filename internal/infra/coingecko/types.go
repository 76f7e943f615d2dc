package coingecko

import (
	"encoding/json"
	"fmt"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/domain"
)

// coinEnvelope covers both shapes a /coins/{id} body can take: a detail
// record (has "id") or an error body (has "error"). The discriminant check
// happens exactly once, in DecodeCoin.
type coinEnvelope struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	WebSlug   string            `json:"web_slug"`
	Platforms map[string]string `json:"platforms"`
	Error     json.RawMessage   `json:"error"`
}

// searchResponse is the /search body. Only the coins list is consulted.
type searchResponse struct {
	Coins []domain.SearchHit `json:"coins"`
}

// SoftError is a 2xx response whose body semantically indicates failure.
type SoftError struct {
	Message string
}

func (e *SoftError) Error() string {
	return e.Message
}

// DecodeCoin classifies a 2xx /coins/{id} body as either a valid coin record
// or a soft error. A valid record has an id and no sibling error field;
// everything else — error bodies, unknown shapes, unparseable JSON — is soft.
// The parse failure itself is never propagated.
func DecodeCoin(status int, body []byte) (domain.CoinRecord, *SoftError) {
	var env coinEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.CoinRecord{}, &SoftError{
			Message: fmt.Sprintf("status %d with unparseable body: %v", status, err),
		}
	}

	if len(env.Error) > 0 {
		var msg string
		if err := json.Unmarshal(env.Error, &msg); err != nil {
			msg = string(env.Error)
		}
		return domain.CoinRecord{}, &SoftError{Message: msg}
	}

	if env.ID == "" {
		return domain.CoinRecord{}, &SoftError{
			Message: fmt.Sprintf("status %d body is not a coin record (missing id)", status),
		}
	}

	record := domain.CoinRecord{
		ID:        env.ID,
		Symbol:    env.Symbol,
		Name:      env.Name,
		WebSlug:   env.WebSlug,
		Platforms: env.Platforms,
	}
	record.Normalize()
	return record, nil
}

// DecodeSearch extracts the candidate list from a 2xx /search body.
// An absent coins field decodes to an empty list, not an error.
func DecodeSearch(body []byte) ([]domain.SearchHit, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unparseable search response: %w", err)
	}
	return resp.Coins, nil
}
