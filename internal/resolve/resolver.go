// Package resolve turns a loose user query (name, symbol, or canonical id)
// into a confirmed CoinGecko coin record via a three-stage fallback:
// direct lookup, fuzzy search, re-resolve by the top search hit.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/BigWhaleLabs/coingecko-mcp/internal/domain"
	"github.com/BigWhaleLabs/coingecko-mcp/internal/infra/coingecko"
)

// Provider is the upstream coin-data API consumed by the resolver.
// Both operations return the HTTP status and raw body for any response;
// the error is transport-level only (dial, timeout, cancellation).
type Provider interface {
	FetchCoin(ctx context.Context, id string) (int, []byte, error)
	Search(ctx context.Context, query string) (int, []byte, error)
}

// FailureKind classifies why a resolution stopped.
type FailureKind string

const (
	// FailTransport is a non-2xx upstream status or a network failure.
	FailTransport FailureKind = "transport"
	// FailNotFound means the search fallback yielded no candidates.
	FailNotFound FailureKind = "not_found"
	// FailInternal is a provider contract violation (e.g. a search hit
	// without an id, or a confirmed id whose detail fetch has no record).
	FailInternal FailureKind = "internal"
)

// Failure is the terminal outcome of an unsuccessful resolution. The detail
// always embeds the original query so tool-level messages stay self-contained.
type Failure struct {
	Kind   FailureKind
	Query  string
	Detail string
}

func (f *Failure) Error() string {
	return f.Detail
}

// Resolver runs the fallback protocol against a Provider. It holds no
// mutable state: concurrent Resolve calls are independent.
type Resolver struct {
	provider Provider
}

// New creates a resolver over the given provider.
func New(p Provider) *Resolver {
	return &Resolver{provider: p}
}

// Resolve executes the three stages strictly in order and returns either a
// projected record or a *Failure. Soft errors and 404s in stage 1 trigger
// the search fallback; every other failure is terminal — one transport
// error ends the call, no retries.
func (r *Resolver) Resolve(ctx context.Context, query string) (domain.CoinRecord, error) {
	// Stage 1: treat the query as a candidate canonical id.
	status, body, err := r.provider.FetchCoin(ctx, query)
	if err != nil {
		return domain.CoinRecord{}, &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("coin lookup for %q failed: %v", query, err),
		}
	}

	switch {
	case is2xx(status):
		record, soft := coingecko.DecodeCoin(status, body)
		if soft == nil {
			return record, nil
		}
		// Soft error on 2xx: the expected "coin not found" body and any
		// unknown error shape both fall back to search.
		slog.Debug("direct lookup soft-failed, falling back to search",
			slog.String("query", query),
			slog.String("reason", soft.Message),
		)
	case status == http.StatusNotFound:
		slog.Debug("direct lookup returned 404, falling back to search",
			slog.String("query", query),
		)
	default:
		// Only 200 and 404 are soft enough to fall back from.
		return domain.CoinRecord{}, &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("coin lookup for %q failed with status %d: %s", query, status, body),
		}
	}

	// Stage 2: fuzzy search on the original query.
	id, fail := r.searchTopHit(ctx, query)
	if fail != nil {
		return domain.CoinRecord{}, fail
	}

	// Stage 3: re-resolve by the confirmed id.
	status, body, err = r.provider.FetchCoin(ctx, id)
	if err != nil {
		return domain.CoinRecord{}, &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("fetching %q (resolved from %q) failed: %v", id, query, err),
		}
	}
	if !is2xx(status) {
		return domain.CoinRecord{}, &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("fetching %q (resolved from %q) failed with status %d: %s", id, query, status, body),
		}
	}

	record, soft := coingecko.DecodeCoin(status, body)
	if soft != nil {
		// The id came from the provider's own search, so a bad detail
		// body here is a contract violation, not a user-input problem.
		return domain.CoinRecord{}, &Failure{
			Kind:   FailInternal,
			Query:  query,
			Detail: fmt.Sprintf("coin %q (resolved from %q) returned no valid record: %s", id, query, soft.Message),
		}
	}

	return record, nil
}

// searchTopHit runs stage 2 and returns the first candidate's id.
func (r *Resolver) searchTopHit(ctx context.Context, query string) (string, *Failure) {
	status, body, err := r.provider.Search(ctx, query)
	if err != nil {
		return "", &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("search for %q failed: %v", query, err),
		}
	}
	if !is2xx(status) {
		return "", &Failure{
			Kind:   FailTransport,
			Query:  query,
			Detail: fmt.Sprintf("search for %q failed with status %d: %s", query, status, body),
		}
	}

	hits, err := coingecko.DecodeSearch(body)
	if err != nil {
		return "", &Failure{
			Kind:   FailInternal,
			Query:  query,
			Detail: fmt.Sprintf("search for %q: %v", query, err),
		}
	}
	if len(hits) == 0 {
		// A normal "nothing matched" outcome, not a transport problem.
		return "", &Failure{
			Kind:   FailNotFound,
			Query:  query,
			Detail: fmt.Sprintf("no CoinGecko coin matched %q", query),
		}
	}

	// Only the first candidate is ever consulted; ordering is the
	// provider's own relevance ranking.
	top := hits[0]
	if top.ID == "" {
		return "", &Failure{
			Kind:   FailInternal,
			Query:  query,
			Detail: fmt.Sprintf("top search hit for %q has no id", query),
		}
	}

	return top.ID, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
