// Package social retrieves token mentions from a microblogging platform
// through a two-tier client: a quota-limited primary backend with a
// paginated secondary fallback, degrading to a deterministic mock dataset
// when no credentials are configured.
package social

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Client searches recent mentions of a token. Implementations return an
// empty slice for "nothing found"; an error means the backend could not be
// consulted at all.
type Client interface {
	SearchMentions(ctx context.Context, contractAddress, symbol string, maxResults int) ([]model.Mention, error)
}

// BuildQuery OR-combines the contract address with the $SYMBOL cash-tag.
// The bare symbol is never used: common-word tickers ("PEPE", "MOON") would
// drown the result in false positives. An empty return means there is
// nothing to search for.
func BuildQuery(contractAddress, symbol string) string {
	var parts []string
	if contractAddress != "" {
		parts = append(parts, contractAddress)
	}
	if symbol != "" {
		parts = append(parts, "$"+symbol)
	}
	return strings.Join(parts, " OR ")
}

// TieredClient tries the primary backend first and falls back to the
// secondary only when the primary is unavailable (quota exhausted or
// transport failure). A zero-result answer from the primary is
// authoritative and never triggers fallback.
type TieredClient struct {
	primary   Client
	secondary Client
}

// NewTieredClient builds the fallback chain. Either backend may be nil
// (unconfigured); with both nil every search resolves to the mock dataset.
func NewTieredClient(primary, secondary Client) *TieredClient {
	return &TieredClient{primary: primary, secondary: secondary}
}

// SearchMentions resolves mentions through the tier chain.
func (tc *TieredClient) SearchMentions(ctx context.Context, contractAddress, symbol string, maxResults int) ([]model.Mention, error) {
	if BuildQuery(contractAddress, symbol) == "" {
		return nil, nil
	}

	if tc.primary == nil && tc.secondary == nil {
		log.Debug().Str("symbol", symbol).Msg("no social backend configured, using mock mentions")
		return MockMentions(), nil
	}

	if tc.primary != nil {
		mentions, err := tc.primary.SearchMentions(ctx, contractAddress, symbol, maxResults)
		if err == nil {
			return mentions, nil
		}
		if errors.Is(err, ErrQuotaExhausted) {
			log.Warn().Str("symbol", symbol).Msg("primary social backend quota exhausted, falling back")
		} else {
			log.Warn().Err(err).Str("symbol", symbol).Msg("primary social backend failed, falling back")
		}
		if tc.secondary == nil {
			return nil, err
		}
	}

	return tc.secondary.SearchMentions(ctx, contractAddress, symbol, maxResults)
}

// sortByRecency orders mentions newest-first in place.
func sortByRecency(mentions []model.Mention) {
	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].CreatedAt.After(mentions[j].CreatedAt)
	})
}
