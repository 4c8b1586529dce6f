package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroadiaz/meme-coin-analysis/internal/coindata"
	"github.com/pedroadiaz/meme-coin-analysis/internal/discovery"
	"github.com/pedroadiaz/meme-coin-analysis/internal/enrich"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

const (
	validSolanaAddress = "FAbEFG2tRQYPPN66C1qfcECNHh5dJkwp9odxFHMdBAGS"
	validEVMAddress    = "0x1234567890abcdef1234567890abcdef12345678"
)

type fakeListingSource struct {
	tokens []model.TokenCandidate
	err    error
}

func (fs fakeListingSource) Name() string { return "fake" }

func (fs fakeListingSource) FetchNew(context.Context, time.Time) ([]model.TokenCandidate, error) {
	return fs.tokens, fs.err
}

type fakeSocialClient struct {
	mentions []model.Mention
	err      error
}

func (fc fakeSocialClient) SearchMentions(context.Context, string, string, int) ([]model.Mention, error) {
	return fc.mentions, fc.err
}

func newTestService(source fakeListingSource, client fakeSocialClient) *Service {
	return NewService(
		discovery.NewDiscoverer(source),
		enrich.NewEnricher(client),
		client,
		coindata.MockProvider{},
		nil,
	)
}

func TestValidateContractAddress(t *testing.T) {
	assert.True(t, ValidateContractAddress(validEVMAddress))
	assert.True(t, ValidateContractAddress(validSolanaAddress))
	assert.False(t, ValidateContractAddress(""))
	assert.False(t, ValidateContractAddress("0x123"), "EVM address too short")
	assert.False(t, ValidateContractAddress("0OIl11111111111111111111111111111111"), "base58 forbids 0, O, I, l")
	assert.False(t, ValidateContractAddress("not an address"))
}

func TestService_DiscoverRanksEnrichedTokens(t *testing.T) {
	source := fakeListingSource{tokens: []model.TokenCandidate{
		{ContractAddress: "ca-low", Symbol: "LOW", CreatedAt: time.Now().UTC()},
		{ContractAddress: "ca-high", Symbol: "HIGH", CreatedAt: time.Now().UTC()},
	}}
	client := fakeSocialClient{mentions: []model.Mention{
		{Username: "a", Followers: 2000, Views: 10000, Likes: 50, Retweets: 5, Text: "pump"},
	}}

	ranked, err := newTestService(source, client).Discover(context.Background(), time.Hour, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Positive(t, ranked[0].TrendingScore)
	assert.Equal(t, ranked[0].TrendingScore, ranked[1].TrendingScore, "identical activity scores identically")
}

func TestService_DiscoverMinMentionsFilters(t *testing.T) {
	source := fakeListingSource{tokens: []model.TokenCandidate{
		{ContractAddress: "ca1", Symbol: "AAA", CreatedAt: time.Now().UTC()},
	}}
	client := fakeSocialClient{mentions: nil} // zero mentions everywhere

	ranked, err := newTestService(source, client).Discover(context.Background(), time.Hour, 1)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestService_DiscoverAllSourcesDown(t *testing.T) {
	source := fakeListingSource{err: errors.New("gateway down")}

	ranked, err := newTestService(source, fakeSocialClient{}).Discover(context.Background(), time.Hour, 0)
	require.Error(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked, "error path still returns an empty slice")
}

func TestService_AnalyzeRejectsMalformedAddress(t *testing.T) {
	service := newTestService(fakeListingSource{}, fakeSocialClient{})

	_, err := service.Analyze(context.Background(), "bogus!!", "AAA")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestService_AnalyzeBuildsFullReport(t *testing.T) {
	now := time.Now().UTC()
	client := fakeSocialClient{mentions: []model.Mention{
		{TweetID: "1", CreatedAt: now, Username: "bull", Followers: 50000, Views: 9000, Likes: 100, Retweets: 10, Text: "this is mooning, bullish!"},
		{TweetID: "2", CreatedAt: now.Add(-time.Hour), Username: "bear", Followers: 3000, Views: 500, Likes: 5, Retweets: 1, Text: "obvious scam, rug incoming"},
	}}
	service := newTestService(fakeListingSource{}, client)

	report, err := service.Analyze(context.Background(), validSolanaAddress, "PEPE2")
	require.NoError(t, err)

	assert.Equal(t, validSolanaAddress, report.ContractAddress)
	require.Len(t, report.Mentions, 2)
	assert.Equal(t, 2, report.Aggregate.Total)
	assert.Equal(t, 1, report.Aggregate.PositiveCount)
	assert.Equal(t, 1, report.Aggregate.NegativeCount)

	require.NotEmpty(t, report.Influencers)
	assert.Equal(t, "bull", report.Influencers[0].Username)

	assert.NotEmpty(t, report.Timeline)
	assert.Equal(t, coindata.MockCoinMetrics(), report.CoinMetrics)
	assert.Equal(t, model.RiskLow, report.Risk.Level, "clean snapshot scores low risk")
}

func TestService_AnalyzeDerivesSymbolFromCashTags(t *testing.T) {
	now := time.Now().UTC()
	client := fakeSocialClient{mentions: []model.Mention{
		{TweetID: "1", CreatedAt: now, Username: "a", Followers: 100, Text: "no tag here"},
		{TweetID: "2", CreatedAt: now, Username: "b", Followers: 200, Text: "$moon is pumping"},
	}}
	service := newTestService(fakeListingSource{}, client)

	report, err := service.Analyze(context.Background(), validSolanaAddress, "")
	require.NoError(t, err)
	assert.Equal(t, "MOON", report.Symbol, "symbol recovered from the first cash-tag")
}

func TestService_AnalyzeSurfacesMentionLookupFailure(t *testing.T) {
	client := fakeSocialClient{err: errors.New("both backends down")}
	service := newTestService(fakeListingSource{}, client)

	_, err := service.Analyze(context.Background(), validEVMAddress, "AAA")
	assert.Error(t, err)
}
