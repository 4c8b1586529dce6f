package model

// Holder is one entry of a token's holder breakdown.
type Holder struct {
	Address    string  `json:"address"`
	Percentage float64 `json:"percentage"`
	Type       string  `json:"type"` // regular/sniper/bundler
}

// CoinMetrics is the on-chain-ish snapshot from the market metrics
// collaborator. InsiderHoldings, SniperHoldings and Bundlers are heuristic
// stand-ins produced by the provider, not verified on-chain computations;
// downstream code must treat them as opaque inputs.
type CoinMetrics struct {
	Price           string   `json:"price"`
	MarketCap       float64  `json:"market_cap"`
	Liquidity       float64  `json:"liquidity"`
	Volume24h       float64  `json:"volume_24h"`
	InsiderHoldings float64  `json:"insider_holdings"` // percent of supply
	SniperHoldings  float64  `json:"sniper_holdings"`  // percent of supply
	Bundlers        int      `json:"bundlers"`
	LPBurned        bool     `json:"lp_burned"`
	Holders         []Holder `json:"holders,omitempty"`
}

// Risk levels.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// RiskAssessment is the rule-based risk verdict for one coin snapshot.
// Factors are the triggered rule descriptions in evaluation order.
type RiskAssessment struct {
	Score   int      `json:"score"` // 0-100 by construction
	Level   string   `json:"level"` // LOW/MEDIUM/HIGH
	Factors []string `json:"factors"`
}
