package social

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

type fakeBackend struct {
	mentions []model.Mention
	err      error
	calls    int
}

func (fb *fakeBackend) SearchMentions(_ context.Context, _, _ string, _ int) ([]model.Mention, error) {
	fb.calls++
	return fb.mentions, fb.err
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "abc123 OR $MOON", BuildQuery("abc123", "MOON"))
	assert.Equal(t, "abc123", BuildQuery("abc123", ""))
	assert.Equal(t, "$MOON", BuildQuery("", "MOON"), "symbol always carries the cash-tag prefix")
	assert.Equal(t, "", BuildQuery("", ""))
}

func TestTieredClient_EmptyQuerySkipsBackends(t *testing.T) {
	primary := &fakeBackend{}
	secondary := &fakeBackend{}
	client := NewTieredClient(primary, secondary)

	mentions, err := client.SearchMentions(context.Background(), "", "", 100)
	require.NoError(t, err)
	assert.Empty(t, mentions)
	assert.Zero(t, primary.calls, "no backend call without a query")
	assert.Zero(t, secondary.calls)
}

func TestTieredClient_PrimaryZeroResultsIsAuthoritative(t *testing.T) {
	primary := &fakeBackend{mentions: []model.Mention{}}
	secondary := &fakeBackend{mentions: []model.Mention{{TweetID: "sec"}}}
	client := NewTieredClient(primary, secondary)

	mentions, err := client.SearchMentions(context.Background(), "ca", "SYM", 100)
	require.NoError(t, err)
	assert.Empty(t, mentions)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, secondary.calls, "zero results must not trigger fallback")
}

func TestTieredClient_QuotaExhaustedFallsBack(t *testing.T) {
	primary := &fakeBackend{err: fmt.Errorf("wrapped: %w", ErrQuotaExhausted)}
	secondary := &fakeBackend{mentions: []model.Mention{{TweetID: "sec"}}}
	client := NewTieredClient(primary, secondary)

	mentions, err := client.SearchMentions(context.Background(), "ca", "SYM", 100)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "sec", mentions[0].TweetID)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestTieredClient_TransportFailureFallsBack(t *testing.T) {
	primary := &fakeBackend{err: errors.New("connection refused")}
	secondary := &fakeBackend{mentions: []model.Mention{{TweetID: "sec"}}}
	client := NewTieredClient(primary, secondary)

	mentions, err := client.SearchMentions(context.Background(), "ca", "SYM", 100)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "sec", mentions[0].TweetID)
}

func TestTieredClient_PrimaryFailureWithoutSecondarySurfacesError(t *testing.T) {
	primary := &fakeBackend{err: errors.New("boom")}
	client := NewTieredClient(primary, nil)

	_, err := client.SearchMentions(context.Background(), "ca", "SYM", 100)
	assert.Error(t, err)
}

func TestTieredClient_UnconfiguredResolvesToMock(t *testing.T) {
	client := NewTieredClient(nil, nil)

	mentions, err := client.SearchMentions(context.Background(), "ca", "SYM", 100)
	require.NoError(t, err)
	assert.Len(t, mentions, 8, "deterministic mock dataset")
	assert.Equal(t, "cryptotrader1", mentions[0].Username)
}

func TestMockMentions_DeterministicContent(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := MockMentionsAt(anchor)
	second := MockMentionsAt(anchor)
	assert.Equal(t, first, second)
}

func TestSortByRecency(t *testing.T) {
	now := time.Now().UTC()
	mentions := []model.Mention{
		{TweetID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{TweetID: "new", CreatedAt: now},
		{TweetID: "mid", CreatedAt: now.Add(-1 * time.Hour)},
	}
	sortByRecency(mentions)
	assert.Equal(t, "new", mentions[0].TweetID)
	assert.Equal(t, "mid", mentions[1].TweetID)
	assert.Equal(t, "old", mentions[2].TweetID)
}
