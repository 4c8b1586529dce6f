package model

import "time"

// TokenCandidate is a newly listed token as reported by a listing source.
// ContractAddress is the identity key: once a candidate is created it is
// never changed, only the enrichment fields on RankedToken are appended.
type TokenCandidate struct {
	ContractAddress string    `json:"contract_address"`
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	Chain           string    `json:"chain"`
	CreatedAt       time.Time `json:"created_at"` // UTC
	Liquidity       float64   `json:"liquidity"`
	MarketCap       float64   `json:"market_cap"`
	Price           string    `json:"price"`
	Volume24h       float64   `json:"volume_24h"`
	PriceChange24h  float64   `json:"price_change_24h"`
	Source          string    `json:"source"` // provenance tag, e.g. "moralis_pumpfun"

	// Optional social links from the listing record.
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Website  string `json:"website,omitempty"`
}

// InfluencerDigest is the compact top-influencer view attached to a
// RankedToken: enough to show who is talking, not the full mention.
type InfluencerDigest struct {
	Username  string `json:"username"`
	Followers int64  `json:"followers"`
	Text      string `json:"text"` // first 100 chars of the mention
}

// RankedToken is a TokenCandidate with social enrichment and the derived
// trending score. TrendingScore is always recomputed from the full field
// set, never patched incrementally.
type RankedToken struct {
	TokenCandidate

	TwitterMentions int               `json:"twitter_mentions"`
	TotalViews      int64             `json:"total_views"`
	TotalLikes      int64             `json:"total_likes"`
	TotalRetweets   int64             `json:"total_retweets"`
	AvgFollowers    float64           `json:"avg_followers"`
	MaxFollowers    int64             `json:"max_followers"`
	TopInfluencer   *InfluencerDigest `json:"top_influencer,omitempty"`
	TrendingScore   float64           `json:"trending_score"`
}
