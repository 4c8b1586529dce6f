package discovery

import (
	"time"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// MockTrendingTokens returns a fixed ranked dataset for running the pipeline
// without any listing source configured.
func MockTrendingTokens() []model.RankedToken {
	return MockTrendingTokensAt(time.Now().UTC())
}

// MockTrendingTokensAt anchors the mock dataset's creation times to a
// caller-supplied reference time.
func MockTrendingTokensAt(now time.Time) []model.RankedToken {
	return []model.RankedToken{
		{
			TokenCandidate: model.TokenCandidate{
				ContractAddress: "0x1234567890abcdef1234567890abcdef12345678",
				Symbol:          "MOON",
				Name:            "Moon Coin",
				Chain:           "ethereum",
				CreatedAt:       now.Add(-2 * time.Minute),
				Liquidity:       50000,
				MarketCap:       100000,
				Price:           "0.0001",
				Volume24h:       25000,
				Source:          "mock",
			},
			TwitterMentions: 45,
			TotalViews:      125000,
			TotalLikes:      890,
			TotalRetweets:   234,
			TrendingScore:   1500,
			TopInfluencer: &model.InfluencerDigest{
				Username:  "cryptowhale",
				Followers: 50000,
				Text:      "New gem alert! $MOON just launched...",
			},
		},
		{
			TokenCandidate: model.TokenCandidate{
				ContractAddress: "0xabcdef1234567890abcdef1234567890abcdef12",
				Symbol:          "ROCKET",
				Name:            "Rocket Token",
				Chain:           "bsc",
				CreatedAt:       now.Add(-1 * time.Minute),
				Liquidity:       75000,
				MarketCap:       150000,
				Price:           "0.0002",
				Volume24h:       40000,
				Source:          "mock",
			},
			TwitterMentions: 32,
			TotalViews:      89000,
			TotalLikes:      567,
			TotalRetweets:   123,
			TrendingScore:   980,
			TopInfluencer: &model.InfluencerDigest{
				Username:  "defiking",
				Followers: 25000,
				Text:      "$ROCKET taking off! Early gem...",
			},
		},
		{
			TokenCandidate: model.TokenCandidate{
				ContractAddress: "FAbEFG2tRQYPPN66C1qfcECNHh5dJkwp9odxFHMdBAGS",
				Symbol:          "PEPE2",
				Name:            "Pepe 2.0",
				Chain:           "solana",
				CreatedAt:       now.Add(-90 * time.Second),
				Liquidity:       25000,
				MarketCap:       50000,
				Price:           "0.00005",
				Volume24h:       15000,
				Source:          "mock",
			},
			TwitterMentions: 18,
			TotalViews:      45000,
			TotalLikes:      234,
			TotalRetweets:   67,
			TrendingScore:   450,
			TopInfluencer: &model.InfluencerDigest{
				Username:  "solanamaxis",
				Followers: 15000,
				Text:      "PEPE2 on Solana pump.fun...",
			},
		},
	}
}
