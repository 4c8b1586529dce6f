// Package persistence stores discovery run snapshots in Postgres. The store
// is optional: a nil store accepts writes and drops them, so the pipeline
// runs unchanged without a database.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Run is one discovery pass and its ranked output.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	MaxAge     time.Duration
	Tokens     []model.RankedToken
}

// Store persists runs.
type Store struct {
	db *sqlx.DB
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const insertRunSQL = `
	INSERT INTO discovery_runs (id, started_at, finished_at, max_age_seconds, token_count)
	VALUES ($1, $2, $3, $4, $5)`

const insertTokenSQL = `
	INSERT INTO run_tokens (run_id, rank, contract_address, symbol, name, chain,
		source, twitter_mentions, total_views, total_likes, total_retweets,
		max_followers, trending_score)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// SaveRun writes the run header and its ranked tokens in one transaction.
// Saving to a nil store is a no-op.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	if s == nil || s.db == nil {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertRunSQL,
		run.ID, run.StartedAt, run.FinishedAt, int(run.MaxAge.Seconds()), len(run.Tokens))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for rank, token := range run.Tokens {
		_, err = tx.ExecContext(ctx, insertTokenSQL,
			run.ID, rank+1, token.ContractAddress, token.Symbol, token.Name, token.Chain,
			token.Source, token.TwitterMentions, token.TotalViews, token.TotalLikes,
			token.TotalRetweets, token.MaxFollowers, token.TrendingScore)
		if err != nil {
			return fmt.Errorf("insert run token %s: %w", token.ContractAddress, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	log.Debug().Str("run_id", run.ID).Int("tokens", len(run.Tokens)).Msg("discovery run persisted")
	return nil
}
