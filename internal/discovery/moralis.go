package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// MoralisConfig configures the pump.fun new-listings source.
type MoralisConfig struct {
	APIKey  string        `yaml:"-"` // from env, never from file
	BaseURL string        `yaml:"base_url"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultMoralisConfig returns the Solana gateway defaults.
func DefaultMoralisConfig() MoralisConfig {
	return MoralisConfig{
		BaseURL: "https://solana-gateway.moralis.io",
		Limit:   100,
		Timeout: 10 * time.Second,
	}
}

// MoralisSource lists freshly created pump.fun tokens.
type MoralisSource struct {
	config     MoralisConfig
	httpClient *http.Client
	now        func() time.Time
}

// NewMoralisSource creates the pump.fun listing source.
func NewMoralisSource(config MoralisConfig) *MoralisSource {
	if config.Limit <= 0 {
		config.Limit = 100
	}
	return &MoralisSource{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *MoralisSource) Name() string { return "moralis_pumpfun" }

// listing wire format; the gateway is inconsistent about field names so
// alternates are decoded side by side.
type moralisListing struct {
	Mint           string    `json:"mint"`
	Address        string    `json:"address"`
	TokenAddress   string    `json:"tokenAddress"`
	Symbol         string    `json:"symbol"`
	Name           string    `json:"name"`
	CreatedAt      string    `json:"createdAt"`
	CreatedAtSnake string    `json:"created_at"`
	Liquidity      flexFloat `json:"liquidity"`
	MarketCap      flexFloat `json:"marketCap"`
	MarketCapSnake flexFloat `json:"market_cap"`
	Price          string    `json:"price"`
	Volume24h      flexFloat `json:"volume24h"`
	Volume         flexFloat `json:"volume"`
	PriceChange24h flexFloat `json:"priceChange24h"`
	Twitter        string    `json:"twitter"`
	Telegram       string    `json:"telegram"`
	Website        string    `json:"website"`
}

type moralisResponse struct {
	Result []moralisListing `json:"result"`
}

// fallback layout for listings without an ISO timestamp.
const moralisFallbackLayout = "2006-01-02 15:04:05"

// FetchNew returns pump.fun listings created at or after cutoff. Listings
// without a contract address, or with a timestamp that fails to parse, are
// dropped; listings without any timestamp are kept and stamped with now.
func (s *MoralisSource) FetchNew(ctx context.Context, cutoff time.Time) ([]model.TokenCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.config.BaseURL+"/token/mainnet/exchange/pumpfun/new?limit="+strconv.Itoa(s.config.Limit), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", s.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moralis request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("moralis: invalid API key")
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("moralis: rate limit exceeded")
	default:
		return nil, fmt.Errorf("moralis HTTP %d", resp.StatusCode)
	}

	var payload moralisResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode moralis response: %w", err)
	}

	var tokens []model.TokenCandidate
	for _, listing := range payload.Result {
		address := firstNonEmpty(listing.Mint, listing.Address, listing.TokenAddress)
		if address == "" {
			log.Debug().Str("symbol", listing.Symbol).Msg("listing has no contract address, skipping")
			continue
		}

		createdAt, ok := s.parseCreatedAt(listing)
		if !ok {
			continue
		}
		if createdAt.Before(cutoff) {
			continue
		}

		price := listing.Price
		if price == "" {
			price = "0"
		}

		tokens = append(tokens, model.TokenCandidate{
			ContractAddress: address,
			Symbol:          firstNonEmpty(listing.Symbol, "Unknown"),
			Name:            firstNonEmpty(listing.Name, "Unknown"),
			Chain:           "solana",
			CreatedAt:       createdAt,
			Liquidity:       float64(listing.Liquidity),
			MarketCap:       float64(listing.MarketCap + listing.MarketCapSnake),
			Price:           price,
			Volume24h:       float64(listing.Volume24h + listing.Volume),
			PriceChange24h:  float64(listing.PriceChange24h),
			Source:          s.Name(),
			Twitter:         cleanLink(listing.Twitter),
			Telegram:        cleanLink(listing.Telegram),
			Website:         cleanLink(listing.Website),
		})
	}

	log.Info().Int("count", len(tokens)).Msg("moralis listings fetched")
	return tokens, nil
}

// parseCreatedAt resolves the listing timestamp. A missing timestamp is
// stamped with now so a fresh listing is not lost; a malformed one marks the
// record untrustworthy and drops it.
func (s *MoralisSource) parseCreatedAt(listing moralisListing) (time.Time, bool) {
	raw := firstNonEmpty(listing.CreatedAt, listing.CreatedAtSnake)
	if raw == "" {
		return s.now(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(moralisFallbackLayout, raw); err == nil {
		return t.UTC(), true
	}
	log.Warn().Str("created_at", raw).Str("symbol", listing.Symbol).Msg("unparseable listing timestamp, dropping record")
	return time.Time{}, false
}
