package social

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

// ErrQuotaExhausted signals that the primary backend's daily search budget
// is spent. Callers react by falling back to the secondary backend; it is
// distinguishable from a zero-result answer.
var ErrQuotaExhausted = errors.New("daily search quota exhausted")

const quotaDateLayout = "2006-01-02"

// RateLimitState is the persisted daily counter for the primary backend.
// The window is the UTC day: the counter resets when the date rolls over.
type RateLimitState struct {
	Date         string `json:"date"` // UTC day, 2006-01-02
	SearchesUsed int    `json:"searches"`
}

// QuotaStore persists RateLimitState across process restarts.
type QuotaStore interface {
	Load(ctx context.Context) (RateLimitState, error)
	Save(ctx context.Context, state RateLimitState) error
}

// Quota guards the primary backend's daily search budget. All mutation is a
// single read-modify-write under the mutex and every increment is flushed to
// the store before the caller proceeds, so concurrent enrichment workers
// cannot lose updates and a restart resumes with the persisted count.
type Quota struct {
	mu    sync.Mutex
	store QuotaStore
	limit int
	state RateLimitState
	now   func() time.Time
}

// NewQuota loads persisted state from the store. A stale date (previous UTC
// day) resets the counter.
func NewQuota(ctx context.Context, store QuotaStore, limit int) (*Quota, error) {
	q := &Quota{store: store, limit: limit, now: time.Now}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quota state: %w", err)
	}
	q.state = state
	q.rollDateLocked()
	telemetry.QuotaUsed.Set(float64(q.state.SearchesUsed))
	return q, nil
}

// Acquire consumes one search from today's budget, persisting the new count
// before returning. Returns ErrQuotaExhausted (wrapped with usage detail)
// when the budget is spent.
func (q *Quota) Acquire(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollDateLocked()
	if q.state.SearchesUsed >= q.limit {
		return fmt.Errorf("%w: %d/%d used for %s", ErrQuotaExhausted, q.state.SearchesUsed, q.limit, q.state.Date)
	}

	q.state.SearchesUsed++
	if err := q.store.Save(ctx, q.state); err != nil {
		// Roll back the in-memory count so a broken store cannot silently
		// burn budget that was never durably recorded.
		q.state.SearchesUsed--
		return fmt.Errorf("persist quota state: %w", err)
	}
	telemetry.QuotaUsed.Set(float64(q.state.SearchesUsed))
	return nil
}

// Release refunds one unit reserved by Acquire. Called when the attempt never
// produced a served response, so a failed request does not burn budget. The
// in-memory refund stands even if the store write fails; the next successful
// Acquire persists the corrected count.
func (q *Quota) Release(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollDateLocked()
	if q.state.SearchesUsed == 0 {
		return
	}
	q.state.SearchesUsed--
	if err := q.store.Save(ctx, q.state); err != nil {
		log.Warn().Err(err).Msg("failed to persist quota refund")
	}
	telemetry.QuotaUsed.Set(float64(q.state.SearchesUsed))
}

// Exhaust pins the counter to the limit for the rest of the UTC day. Used
// when the upstream answers "too many requests": retrying before the window
// resets would only fail again.
func (q *Quota) Exhaust(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollDateLocked()
	q.state.SearchesUsed = q.limit
	telemetry.QuotaUsed.Set(float64(q.state.SearchesUsed))
	return q.store.Save(ctx, q.state)
}

// Remaining reports the searches left in today's window.
func (q *Quota) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollDateLocked()
	if remaining := q.limit - q.state.SearchesUsed; remaining > 0 {
		return remaining
	}
	return 0
}

// rollDateLocked resets the counter at the UTC day boundary. Caller holds mu.
func (q *Quota) rollDateLocked() {
	today := q.now().UTC().Format(quotaDateLayout)
	if q.state.Date != today {
		q.state = RateLimitState{Date: today}
	}
}
