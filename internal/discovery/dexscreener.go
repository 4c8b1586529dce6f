package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/net/ratelimit"
)

// DexScreenerConfig configures the backup listing source.
type DexScreenerConfig struct {
	BaseURL   string        `yaml:"base_url"`
	LookupRPS float64       `yaml:"lookup_rps"` // per-token pair lookups
	MaxTokens int           `yaml:"max_tokens"` // profiles inspected per fetch
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultDexScreenerConfig returns public-API defaults.
func DefaultDexScreenerConfig() DexScreenerConfig {
	return DexScreenerConfig{
		BaseURL:   "https://api.dexscreener.com",
		LookupRPS: 10.0,
		MaxTokens: 50,
		Timeout:   10 * time.Second,
	}
}

// DexScreenerSource discovers new Solana tokens from the latest token
// profiles, resolving each profile to its freshest trading pair.
type DexScreenerSource struct {
	config     DexScreenerConfig
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	host       string
}

// NewDexScreenerSource creates the backup listing source.
func NewDexScreenerSource(config DexScreenerConfig) *DexScreenerSource {
	if config.LookupRPS <= 0 {
		config.LookupRPS = 10.0
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 50
	}

	host := config.BaseURL
	if parsed, err := url.Parse(config.BaseURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	return &DexScreenerSource{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    ratelimit.NewLimiter(config.LookupRPS, 1),
		host:       host,
	}
}

func (s *DexScreenerSource) Name() string { return "dexscreener" }

type dexProfile struct {
	ChainID      string `json:"chainId"`
	TokenAddress string `json:"tokenAddress"`
}

type dexPair struct {
	PairCreatedAt int64   `json:"pairCreatedAt"` // epoch milliseconds
	ChainID       string  `json:"chainId"`
	PriceUsd      string  `json:"priceUsd"`
	FDV           float64 `json:"fdv"`
	BaseToken     struct {
		Address string `json:"address"`
		Symbol  string `json:"symbol"`
		Name    string `json:"name"`
	} `json:"baseToken"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	Volume struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
}

type dexPairsResponse struct {
	Pairs []dexPair `json:"pairs"`
}

// FetchNew walks the latest Solana token profiles and keeps tokens whose
// first pair was created at or after cutoff. One pair per token.
func (s *DexScreenerSource) FetchNew(ctx context.Context, cutoff time.Time) ([]model.TokenCandidate, error) {
	profiles, err := s.fetchProfiles(ctx)
	if err != nil {
		return nil, err
	}

	var tokens []model.TokenCandidate
	inspected := 0
	for _, profile := range profiles {
		if profile.ChainID != "solana" || profile.TokenAddress == "" {
			continue
		}
		if inspected >= s.config.MaxTokens {
			break
		}
		inspected++

		// Politeness delay between per-token lookups.
		if err := s.limiter.Wait(ctx, s.host); err != nil {
			return tokens, err
		}

		pairs, err := s.fetchPairs(ctx, profile.TokenAddress)
		if err != nil {
			log.Debug().Err(err).Str("token", profile.TokenAddress).Msg("pair lookup failed, skipping token")
			continue
		}

		for _, pair := range pairs {
			if pair.PairCreatedAt == 0 {
				continue
			}
			createdAt := time.UnixMilli(pair.PairCreatedAt).UTC()
			if createdAt.Before(cutoff) {
				continue
			}
			if pair.BaseToken.Address == "" {
				continue
			}

			price := pair.PriceUsd
			if price == "" {
				price = "0"
			}

			tokens = append(tokens, model.TokenCandidate{
				ContractAddress: pair.BaseToken.Address,
				Symbol:          firstNonEmpty(pair.BaseToken.Symbol, "Unknown"),
				Name:            firstNonEmpty(pair.BaseToken.Name, "Unknown"),
				Chain:           profile.ChainID,
				CreatedAt:       createdAt,
				Liquidity:       pair.Liquidity.USD,
				MarketCap:       pair.FDV,
				Price:           price,
				Volume24h:       pair.Volume.H24,
				PriceChange24h:  pair.PriceChange.H24,
				Source:          s.Name(),
			})
			break
		}
	}

	log.Info().Int("count", len(tokens)).Msg("dexscreener listings fetched")
	return tokens, nil
}

func (s *DexScreenerSource) fetchProfiles(ctx context.Context) ([]dexProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"/token-profiles/latest/v1", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener profiles request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener profiles HTTP %d", resp.StatusCode)
	}

	var profiles []dexProfile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return nil, fmt.Errorf("decode profiles response: %w", err)
	}
	return profiles, nil
}

func (s *DexScreenerSource) fetchPairs(ctx context.Context, tokenAddress string) ([]dexPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"/latest/dex/tokens/"+tokenAddress, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener pairs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener pairs HTTP %d", resp.StatusCode)
	}

	var payload dexPairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pairs response: %w", err)
	}
	return payload.Pairs, nil
}
