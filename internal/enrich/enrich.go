// Package enrich attaches social mention activity to discovered tokens.
package enrich

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/social"
	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

const (
	defaultWorkers     = 5
	defaultTaskTimeout = 10 * time.Second
	maxMentionsPerScan = 100
	influencerTextCap  = 100
)

// Enricher looks up mention activity for a batch of tokens with a fixed
// worker pool.
type Enricher struct {
	client      social.Client
	workers     int
	taskTimeout time.Duration
}

// Option adjusts enricher behavior.
type Option func(*Enricher)

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithTaskTimeout bounds each per-token lookup.
func WithTaskTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.taskTimeout = d
		}
	}
}

// NewEnricher creates an enricher over the given mention client.
func NewEnricher(client social.Client, opts ...Option) *Enricher {
	e := &Enricher{
		client:      client,
		workers:     defaultWorkers,
		taskTimeout: defaultTaskTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich resolves mention activity for every token. The result has one entry
// per input token in input order; a token whose lookup fails or panics keeps
// zeroed activity fields rather than aborting the batch.
func (e *Enricher) Enrich(ctx context.Context, tokens []model.TokenCandidate) []model.RankedToken {
	results := make([]model.RankedToken, len(tokens))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.enrichOne(ctx, tokens[i])
			}
		}()
	}

	for i := range tokens {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

func (e *Enricher) enrichOne(ctx context.Context, token model.TokenCandidate) (result model.RankedToken) {
	result = model.RankedToken{TokenCandidate: token}

	defer func() {
		if r := recover(); r != nil {
			telemetry.EnrichFailures.Inc()
			log.Error().Interface("panic", r).Str("symbol", token.Symbol).Msg("mention lookup panicked")
			result = model.RankedToken{TokenCandidate: token}
		}
	}()

	taskCtx, cancel := context.WithTimeout(ctx, e.taskTimeout)
	defer cancel()

	mentions, err := e.client.SearchMentions(taskCtx, token.ContractAddress, token.Symbol, maxMentionsPerScan)
	if err != nil {
		telemetry.EnrichFailures.Inc()
		log.Warn().Err(err).Str("symbol", token.Symbol).Msg("mention lookup failed")
		return result
	}
	if len(mentions) == 0 {
		return result
	}

	result.TwitterMentions = len(mentions)
	var followerSum int64
	var top *model.Mention
	for i := range mentions {
		m := &mentions[i]
		result.TotalViews += m.Views
		result.TotalLikes += m.Likes
		result.TotalRetweets += m.Retweets
		followerSum += m.Followers
		if top == nil || m.Followers > top.Followers {
			top = m
		}
	}

	result.AvgFollowers = float64(followerSum) / float64(len(mentions))
	result.MaxFollowers = top.Followers
	result.TopInfluencer = &model.InfluencerDigest{
		Username:  top.Username,
		Followers: top.Followers,
		Text:      truncate(top.Text, influencerTextCap),
	}
	return result
}

// FilterByMentions keeps tokens with at least minMentions mention hits.
// A non-positive threshold keeps everything.
func FilterByMentions(tokens []model.RankedToken, minMentions int) []model.RankedToken {
	if minMentions <= 0 {
		return tokens
	}
	kept := make([]model.RankedToken, 0, len(tokens))
	for _, token := range tokens {
		if token.TwitterMentions >= minMentions {
			kept = append(kept, token)
		}
	}
	return kept
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
