// Package coindata resolves on-chain market and holder metrics for a token.
// The provider contract is that lookups never fail: when live data is
// unreachable the deterministic snapshot stands in, so downstream risk
// scoring always has input.
package coindata

import (
	"context"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Provider resolves coin metrics by contract address.
type Provider interface {
	GetCoinData(ctx context.Context, contractAddress string) model.CoinMetrics
}

// MockCoinMetrics returns the fixed offline snapshot.
func MockCoinMetrics() model.CoinMetrics {
	return model.CoinMetrics{
		Price:           "0.00000234",
		MarketCap:       2340000,
		Liquidity:       450000,
		Volume24h:       890000,
		InsiderHoldings: 12.5,
		SniperHoldings:  6.3,
		Bundlers:        2,
		LPBurned:        true,
		Holders: []model.Holder{
			{Address: "0x1234...5678", Percentage: 5.2, Type: "regular"},
			{Address: "0xabcd...efgh", Percentage: 3.8, Type: "regular"},
			{Address: "0x9876...5432", Percentage: 2.1, Type: "sniper"},
			{Address: "0xdead...beef", Percentage: 1.9, Type: "regular"},
			{Address: "0xcafe...babe", Percentage: 1.5, Type: "bundler"},
		},
	}
}

// MockProvider always serves the offline snapshot.
type MockProvider struct{}

func (MockProvider) GetCoinData(context.Context, string) model.CoinMetrics {
	return MockCoinMetrics()
}
