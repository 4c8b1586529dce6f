package model

import "time"

// Mention is a single social post referencing a token. Produced by the
// social client, read-only downstream.
type Mention struct {
	TweetID   string    `json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	Username  string    `json:"username"`
	Followers int64     `json:"followers"`
	Following int64     `json:"following"`
	Verified  bool      `json:"verified"`
	Retweets  int64     `json:"retweets"`
	Likes     int64     `json:"likes"`
	Replies   int64     `json:"replies"`
	Views     int64     `json:"views"`
	Lang      string    `json:"lang"`
}

// Sentiment labels for classified mentions.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentResult is a Mention extended with its classification. The score
// always derives from the embedded mention's text.
type SentimentResult struct {
	Mention

	Sentiment      string  `json:"sentiment"`       // positive/negative/neutral
	SentimentScore float64 `json:"sentiment_score"` // compound in [-1, 1]
}

// EngagementStats summarizes engagement for one sentiment bucket.
type EngagementStats struct {
	AvgViews     float64 `json:"avg_views"`
	AvgRetweets  float64 `json:"avg_retweets"`
	AvgLikes     float64 `json:"avg_likes"`
	TotalReach   int64   `json:"total_reach"` // sum of author followers
	AvgFollowers float64 `json:"avg_followers"`
}

// AggregateMetrics is the per-analysis sentiment summary. Recomputed fresh
// on every analysis.
type AggregateMetrics struct {
	Total                 int                        `json:"total"`
	PositiveCount         int                        `json:"positive_count"`
	NegativeCount         int                        `json:"negative_count"`
	NeutralCount          int                        `json:"neutral_count"`
	AverageSentiment      float64                    `json:"average_sentiment"`
	EngagementBySentiment map[string]EngagementStats `json:"engagement_by_sentiment"`
}

// Influencer is a SentimentResult with its derived influence score.
type Influencer struct {
	SentimentResult

	InfluenceScore float64 `json:"influence_score"`
}

// TimelineBucket holds per-sentiment mention counts for one time bucket.
type TimelineBucket struct {
	Start  time.Time      `json:"start"`
	Counts map[string]int `json:"counts"` // sentiment label -> count
}
