package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moralisFixture = `{
	"result": [
		{
			"mint": "So1anaMintAddr111111111111111111111111111111",
			"symbol": "FRESH", "name": "Fresh Token",
			"createdAt": "2025-06-01T11:59:00Z",
			"liquidity": "1234.5", "marketCap": 99000,
			"price": "0.00001", "volume24h": 500,
			"twitter": "https://x.com/fresh", "telegram": "t.me/freshtoken"
		},
		{
			"address": "So1anaMintAddr222222222222222222222222222222",
			"symbol": "STALE", "name": "Stale Token",
			"createdAt": "2025-06-01 10:00:00"
		},
		{
			"tokenAddress": "So1anaMintAddr333333333333333333333333333333",
			"symbol": "BADTS", "name": "Bad Timestamp",
			"createdAt": "yesterday-ish"
		},
		{
			"mint": "So1anaMintAddr444444444444444444444444444444",
			"symbol": "NOTS", "name": "No Timestamp"
		},
		{
			"symbol": "NOCA", "name": "No Address",
			"createdAt": "2025-06-01T11:59:30Z"
		}
	]
}`

func newTestMoralisSource(server *httptest.Server, now time.Time) *MoralisSource {
	config := DefaultMoralisConfig()
	config.BaseURL = server.URL
	config.APIKey = "test-key"
	source := NewMoralisSource(config)
	source.now = func() time.Time { return now }
	return source
}

func TestMoralisSource_FiltersAndMapsListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(moralisFixture))
	}))
	defer server.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	source := newTestMoralisSource(server, now)

	tokens, err := source.FetchNew(context.Background(), now.Add(-3*time.Minute))
	require.NoError(t, err)

	// FRESH is inside the window; STALE is too old; BADTS has a malformed
	// timestamp and is dropped; NOTS has none and is stamped with now;
	// NOCA has no contract address.
	require.Len(t, tokens, 2)

	fresh := tokens[0]
	assert.Equal(t, "So1anaMintAddr111111111111111111111111111111", fresh.ContractAddress)
	assert.Equal(t, "FRESH", fresh.Symbol)
	assert.Equal(t, "solana", fresh.Chain)
	assert.Equal(t, 1234.5, fresh.Liquidity, "string-typed numbers decode")
	assert.Equal(t, float64(99000), fresh.MarketCap)
	assert.Equal(t, "0.00001", fresh.Price)
	assert.Equal(t, "moralis_pumpfun", fresh.Source)
	assert.Equal(t, "https://x.com/fresh", fresh.Twitter)
	assert.Equal(t, "https://t.me/freshtoken", fresh.Telegram, "schemeless links get https")

	noTS := tokens[1]
	assert.Equal(t, "NOTS", noTS.Symbol)
	assert.Equal(t, now, noTS.CreatedAt, "missing timestamp is stamped with now")
}

func TestMoralisSource_UnauthorizedSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	source := newTestMoralisSource(server, time.Now().UTC())
	_, err := source.FetchNew(context.Background(), time.Now().Add(-time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestFlexFloat_ToleratesMixedTypes(t *testing.T) {
	cases := map[string]float64{
		`123.4`:   123.4,
		`"567.8"`: 567.8,
		`"oops"`:  0,
		`null`:    0,
		`""`:      0,
	}
	for input, want := range cases {
		var f flexFloat
		require.NoError(t, f.UnmarshalJSON([]byte(input)), input)
		assert.Equal(t, want, float64(f), input)
	}
}
