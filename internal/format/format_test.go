package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "1.50B", Number(1_500_000_000))
	assert.Equal(t, "2.34M", Number(2_340_000))
	assert.Equal(t, "450.00K", Number(450_000))
	assert.Equal(t, "999.99", Number(999.99))
	assert.Equal(t, "0.00", Number(0))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2d ago", TimeAgo(now.Add(-49*time.Hour), now))
	assert.Equal(t, "3h ago", TimeAgo(now.Add(-3*time.Hour-10*time.Minute), now))
	assert.Equal(t, "45m ago", TimeAgo(now.Add(-45*time.Minute), now))
	assert.Equal(t, "just now", TimeAgo(now.Add(-30*time.Second), now))
}

func TestExtractTokenSymbol(t *testing.T) {
	assert.Equal(t, "MOON", ExtractTokenSymbol("loading up on $moon right now"))
	assert.Equal(t, "PEPE", ExtractTokenSymbol("$PEPE and $DOGE both pumping"))
	assert.Equal(t, "", ExtractTokenSymbol("no tags here"))
}

func TestTweetURL(t *testing.T) {
	assert.Equal(t, "https://twitter.com/whale/status/123", TweetURL("whale", "123"))
}

func TestCleanURL(t *testing.T) {
	assert.Equal(t, "https://example.com", CleanURL("  example.com "))
	assert.Equal(t, "http://example.com", CleanURL("http://example.com"))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x12345678...", ShortAddress("0x1234567890abcdef"))
	assert.Equal(t, "short", ShortAddress("short"))
}
