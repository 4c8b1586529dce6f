// Package discovery aggregates new token listings from multiple exchange
// sources into a single deduplicated candidate list.
package discovery

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

// Discoverer fans out to listing sources and merges their results.
type Discoverer struct {
	sources []ListingSource
	now     func() time.Time
}

// NewDiscoverer creates a discoverer over the given sources. Source order
// determines precedence when the same contract address appears twice.
func NewDiscoverer(sources ...ListingSource) *Discoverer {
	return &Discoverer{
		sources: sources,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Discover returns tokens created within maxAge of now, deduplicated by
// contract address with first-seen-wins. A failing source is logged and
// skipped; the merged result of the healthy sources is still returned.
func (d *Discoverer) Discover(ctx context.Context, maxAge time.Duration) ([]model.TokenCandidate, error) {
	cutoff := d.now().Add(-maxAge)

	var all []model.TokenCandidate
	var lastErr error
	for _, source := range d.sources {
		tokens, err := source.FetchNew(ctx, cutoff)
		if err != nil {
			log.Warn().Err(err).Str("source", source.Name()).Msg("listing source failed")
			lastErr = err
			continue
		}
		telemetry.TokensDiscovered.WithLabelValues(source.Name()).Add(float64(len(tokens)))
		all = append(all, tokens...)
	}

	unique := dedupe(all)
	if len(unique) == 0 && lastErr != nil {
		// Nothing discovered and at least one source broke: surface it.
		return nil, lastErr
	}

	log.Info().Int("unique", len(unique)).Int("raw", len(all)).Msg("token discovery completed")
	return unique, nil
}

// dedupe keeps the first occurrence of each contract address and drops
// records without one.
func dedupe(tokens []model.TokenCandidate) []model.TokenCandidate {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]model.TokenCandidate, 0, len(tokens))
	duplicates := 0

	for _, token := range tokens {
		if token.ContractAddress == "" {
			log.Debug().Str("symbol", token.Symbol).Msg("token has no contract address, skipping")
			continue
		}
		if _, ok := seen[token.ContractAddress]; ok {
			duplicates++
			continue
		}
		seen[token.ContractAddress] = struct{}{}
		unique = append(unique, token)
	}

	if duplicates > 0 {
		log.Debug().Int("count", duplicates).Msg("duplicate contract addresses removed")
	}
	return unique
}
