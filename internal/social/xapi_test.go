package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestXAPIClient(t *testing.T, server *httptest.Server, limit int) *XAPIClient {
	t.Helper()
	quota, err := NewQuota(context.Background(), NewFileStore(filepath.Join(t.TempDir(), "quota.json")), limit)
	require.NoError(t, err)

	config := DefaultXAPIConfig()
	config.BaseURL = server.URL
	config.BearerToken = "test-token"
	return NewXAPIClient(config, quota)
}

const xapiFixture = `{
	"data": [
		{
			"id": "100", "text": "to the moon",
			"created_at": "2025-06-01T10:00:00Z", "author_id": "u1", "lang": "en",
			"public_metrics": {"retweet_count": 5, "reply_count": 1, "like_count": 20, "impression_count": 900}
		},
		{
			"id": "101", "text": "looks like a rug",
			"created_at": "2025-06-01T12:00:00Z", "author_id": "u2", "lang": "en",
			"public_metrics": {"retweet_count": 9, "reply_count": 3, "like_count": 40, "impression_count": 5000}
		}
	],
	"includes": {
		"users": [
			{"id": "u1", "username": "alpha", "verified": false, "public_metrics": {"followers_count": 1200, "following_count": 300}},
			{"id": "u2", "username": "beta", "verified": true, "public_metrics": {"followers_count": 50000, "following_count": 10}}
		]
	}
}`

func TestXAPIClient_ParsesAndSortsMentions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Query().Get("query"), "-is:retweet")
		w.Write([]byte(xapiFixture))
	}))
	defer server.Close()

	client := newTestXAPIClient(t, server, 10)
	mentions, err := client.SearchMentions(context.Background(), "ca", "SYM", 50)
	require.NoError(t, err)
	require.Len(t, mentions, 2)

	// Newest first.
	assert.Equal(t, "101", mentions[0].TweetID)
	assert.Equal(t, "beta", mentions[0].Username)
	assert.True(t, mentions[0].Verified)
	assert.Equal(t, int64(50000), mentions[0].Followers)
	assert.Equal(t, int64(5000), mentions[0].Views)
	assert.Equal(t, "alpha", mentions[1].Username)
}

func TestXAPIClient_ConsumesQuotaPerSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestXAPIClient(t, server, 2)
	ctx := context.Background()

	_, err := client.SearchMentions(ctx, "ca", "SYM", 10)
	require.NoError(t, err)
	_, err = client.SearchMentions(ctx, "ca", "SYM", 10)
	require.NoError(t, err)

	_, err = client.SearchMentions(ctx, "ca", "SYM", 10)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestXAPIClient_429ExhaustsRemainingQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestXAPIClient(t, server, 100)
	ctx := context.Background()

	_, err := client.SearchMentions(ctx, "ca", "SYM", 10)
	require.ErrorIs(t, err, ErrQuotaExhausted)

	// The whole remaining budget is gone, not just one unit.
	assert.Zero(t, client.quota.Remaining())
	_, err = client.SearchMentions(ctx, "ca", "SYM", 10)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestXAPIClient_HTTPErrorRefundsQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestXAPIClient(t, server, 100)
	_, err := client.SearchMentions(context.Background(), "ca", "SYM", 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, 100, client.quota.Remaining(), "failed attempt must not consume quota")
}

func TestXAPIClient_TransportErrorRefundsQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuses connections from here on

	client := newTestXAPIClient(t, server, 100)
	_, err := client.SearchMentions(context.Background(), "ca", "SYM", 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, 100, client.quota.Remaining(), "failed attempt must not consume quota")
}
