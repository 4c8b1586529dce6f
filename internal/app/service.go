// Package app wires the pipeline stages into the two top-level operations:
// a discovery scan and a single-token deep analysis.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/coindata"
	"github.com/pedroadiaz/meme-coin-analysis/internal/discovery"
	"github.com/pedroadiaz/meme-coin-analysis/internal/enrich"
	"github.com/pedroadiaz/meme-coin-analysis/internal/format"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/persistence"
	"github.com/pedroadiaz/meme-coin-analysis/internal/ranking"
	"github.com/pedroadiaz/meme-coin-analysis/internal/risk"
	"github.com/pedroadiaz/meme-coin-analysis/internal/sentiment"
	"github.com/pedroadiaz/meme-coin-analysis/internal/social"
	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

// ErrInvalidAddress rejects analysis requests for malformed contract
// addresses.
var ErrInvalidAddress = errors.New("invalid contract address")

var (
	evmAddressPattern    = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	solanaAddressPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
)

// ValidateContractAddress accepts EVM 0x-hex and Solana base58 addresses.
func ValidateContractAddress(address string) bool {
	return evmAddressPattern.MatchString(address) || solanaAddressPattern.MatchString(address)
}

const (
	maxMentionsPerAnalysis = 100
	timelineBucketWidth    = time.Hour
	influencerMinFollowers = 1000
)

// AnalysisReport is the full single-token view: scored mentions, aggregates,
// market metrics, and the risk verdict.
type AnalysisReport struct {
	ContractAddress string                  `json:"contract_address"`
	Symbol          string                  `json:"symbol"`
	Mentions        []model.SentimentResult `json:"mentions"`
	Aggregate       model.AggregateMetrics  `json:"aggregate"`
	Influencers     []model.Influencer      `json:"influencers"`
	Timeline        []model.TimelineBucket  `json:"timeline"`
	CoinMetrics     model.CoinMetrics       `json:"coin_metrics"`
	Risk            model.RiskAssessment    `json:"risk"`
}

// Service is the application facade over the pipeline stages.
type Service struct {
	discoverer *discovery.Discoverer
	enricher   *enrich.Enricher
	social     social.Client
	coinData   coindata.Provider
	analyzer   *sentiment.Analyzer
	store      *persistence.Store
	now        func() time.Time
}

// NewService assembles the facade. The store may be nil when persistence is
// disabled.
func NewService(
	discoverer *discovery.Discoverer,
	enricher *enrich.Enricher,
	socialClient social.Client,
	coinData coindata.Provider,
	store *persistence.Store,
) *Service {
	return &Service{
		discoverer: discoverer,
		enricher:   enricher,
		social:     socialClient,
		coinData:   coinData,
		analyzer:   sentiment.NewAnalyzer(),
		store:      store,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Discover runs one scan: fetch new listings, enrich with mention activity,
// filter, and rank. Discovery failing entirely returns an empty slice and
// the error; a persistence failure only logs.
func (s *Service) Discover(ctx context.Context, maxAge time.Duration, minMentions int) ([]model.RankedToken, error) {
	runID := uuid.NewString()
	startedAt := s.now()
	telemetry.DiscoveryRuns.Inc()
	log.Info().Str("run_id", runID).Dur("max_age", maxAge).Int("min_mentions", minMentions).Msg("discovery run starting")

	candidates, err := s.discoverer.Discover(ctx, maxAge)
	if err != nil {
		return []model.RankedToken{}, fmt.Errorf("token discovery: %w", err)
	}
	if len(candidates) == 0 {
		log.Info().Str("run_id", runID).Msg("no new tokens in window")
		return []model.RankedToken{}, nil
	}

	enriched := s.enricher.Enrich(ctx, candidates)
	filtered := enrich.FilterByMentions(enriched, minMentions)
	ranked := ranking.Rank(filtered)

	if err := s.store.SaveRun(ctx, persistence.Run{
		ID:         runID,
		StartedAt:  startedAt,
		FinishedAt: s.now(),
		MaxAge:     maxAge,
		Tokens:     ranked,
	}); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("failed to persist discovery run")
	}

	log.Info().Str("run_id", runID).Int("candidates", len(candidates)).Int("ranked", len(ranked)).Msg("discovery run completed")
	return ranked, nil
}

// Analyze builds the full report for one token. The contract address must be
// a plausible EVM or Solana address.
func (s *Service) Analyze(ctx context.Context, contractAddress, symbol string) (*AnalysisReport, error) {
	if !ValidateContractAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, contractAddress)
	}

	mentions, err := s.social.SearchMentions(ctx, contractAddress, symbol, maxMentionsPerAnalysis)
	if err != nil {
		return nil, fmt.Errorf("mention lookup: %w", err)
	}

	if symbol == "" {
		symbol = symbolFromMentions(mentions)
	}

	results := s.analyzer.Analyze(mentions)
	metrics := s.coinData.GetCoinData(ctx, contractAddress)

	report := &AnalysisReport{
		ContractAddress: contractAddress,
		Symbol:          symbol,
		Mentions:        results,
		Aggregate:       sentiment.Aggregate(results),
		Influencers:     sentiment.RankInfluencers(results, influencerMinFollowers),
		Timeline:        sentiment.Timeline(results, timelineBucketWidth),
		CoinMetrics:     metrics,
		Risk:            risk.Assess(metrics),
	}

	log.Info().Str("address", contractAddress).Int("mentions", len(results)).
		Str("risk", report.Risk.Level).Msg("analysis completed")
	return report, nil
}

// symbolFromMentions recovers a display symbol from cash-tags when the caller
// did not supply one.
func symbolFromMentions(mentions []model.Mention) string {
	for _, m := range mentions {
		if sym := format.ExtractTokenSymbol(m.Text); sym != "" {
			return sym
		}
	}
	return ""
}
