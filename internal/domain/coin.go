package domain

// CoinRecord is the projected view of a CoinGecko coin-detail record that
// tools return to the caller. Exactly these five fields, nothing else from
// the (very large) upstream payload.
type CoinRecord struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	WebSlug   string            `json:"web_slug"`
	Platforms map[string]string `json:"platforms"`
}

// Normalize ensures the record upholds the projection invariant:
// Platforms is never nil, so it always serializes as an object.
func (r *CoinRecord) Normalize() {
	if r.Platforms == nil {
		r.Platforms = map[string]string{}
	}
}

// SearchHit is one candidate from the /search endpoint. Search hits carry
// identity fields only; they are never a substitute for a detail record.
type SearchHit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
