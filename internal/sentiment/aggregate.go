package sentiment

import (
	"sort"
	"time"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Influence score weights: reach first, then visibility, then engagement.
const (
	followerInfluenceWeight = 0.4
	viewInfluenceWeight     = 0.3
	retweetInfluenceWeight  = 0.2
	likeInfluenceWeight     = 0.1
)

var sentimentBuckets = []string{
	model.SentimentPositive,
	model.SentimentNegative,
	model.SentimentNeutral,
}

// Aggregate summarizes a batch of classified mentions. Empty input returns
// the all-zero structure, and every sentiment bucket is present even with
// zero members (all-zero sub-metrics, never NaN).
func Aggregate(results []model.SentimentResult) model.AggregateMetrics {
	metrics := model.AggregateMetrics{
		EngagementBySentiment: make(map[string]model.EngagementStats, len(sentimentBuckets)),
	}
	for _, bucket := range sentimentBuckets {
		metrics.EngagementBySentiment[bucket] = model.EngagementStats{}
	}

	if len(results) == 0 {
		return metrics
	}

	byBucket := make(map[string][]model.SentimentResult, len(sentimentBuckets))
	var scoreSum float64

	for _, result := range results {
		byBucket[result.Sentiment] = append(byBucket[result.Sentiment], result)
		scoreSum += result.SentimentScore
	}

	metrics.Total = len(results)
	metrics.PositiveCount = len(byBucket[model.SentimentPositive])
	metrics.NegativeCount = len(byBucket[model.SentimentNegative])
	metrics.NeutralCount = len(byBucket[model.SentimentNeutral])
	metrics.AverageSentiment = scoreSum / float64(len(results))

	for _, bucket := range sentimentBuckets {
		members := byBucket[bucket]
		if len(members) == 0 {
			continue
		}

		var views, retweets, likes, followers int64
		for _, member := range members {
			views += member.Views
			retweets += member.Retweets
			likes += member.Likes
			followers += member.Followers
		}

		count := float64(len(members))
		metrics.EngagementBySentiment[bucket] = model.EngagementStats{
			AvgViews:     float64(views) / count,
			AvgRetweets:  float64(retweets) / count,
			AvgLikes:     float64(likes) / count,
			TotalReach:   followers,
			AvgFollowers: float64(followers) / count,
		}
	}

	return metrics
}

// RankInfluencers filters mentions by a follower floor and orders them by
// influence score descending. No qualifiers yields an empty slice.
func RankInfluencers(results []model.SentimentResult, minFollowers int64) []model.Influencer {
	influencers := make([]model.Influencer, 0)
	for _, result := range results {
		if result.Followers < minFollowers {
			continue
		}
		influencers = append(influencers, model.Influencer{
			SentimentResult: result,
			InfluenceScore: float64(result.Followers)*followerInfluenceWeight +
				float64(result.Views)*viewInfluenceWeight +
				float64(result.Retweets)*retweetInfluenceWeight +
				float64(result.Likes)*likeInfluenceWeight,
		})
	}

	sort.SliceStable(influencers, func(i, j int) bool {
		return influencers[i].InfluenceScore > influencers[j].InfluenceScore
	})

	return influencers
}

// Timeline bucketizes mentions by creation time into fixed-width windows,
// returning buckets ordered by start ascending. Empty input yields an empty
// slice.
func Timeline(results []model.SentimentResult, bucketWidth time.Duration) []model.TimelineBucket {
	if len(results) == 0 {
		return nil
	}
	if bucketWidth <= 0 {
		bucketWidth = time.Hour
	}

	byStart := make(map[time.Time]map[string]int)
	for _, result := range results {
		start := result.CreatedAt.UTC().Truncate(bucketWidth)
		if byStart[start] == nil {
			byStart[start] = make(map[string]int)
		}
		byStart[start][result.Sentiment]++
	}

	buckets := make([]model.TimelineBucket, 0, len(byStart))
	for start, counts := range byStart {
		buckets = append(buckets, model.TimelineBucket{Start: start, Counts: counts})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})

	return buckets
}

// EngagementRate is the interactions-per-view percentage for one mention.
func EngagementRate(views, interactions int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(interactions) / float64(views) * 100
}
