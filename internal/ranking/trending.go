// Package ranking computes the composite trending score and orders tokens.
package ranking

import (
	"sort"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Trending score weights. Mentions dominate; raw view counts and follower
// ceilings are scaled down so a single viral post cannot drown out volume.
const (
	mentionWeight   = 10.0
	viewsDivisor    = 1000.0
	likeWeight      = 2.0
	retweetWeight   = 3.0
	followerDivisor = 10000.0
)

// Score computes the trending score from the token's full current field set.
// It is monotonically non-decreasing in each input.
func Score(t model.RankedToken) float64 {
	return float64(t.TwitterMentions)*mentionWeight +
		float64(t.TotalViews)/viewsDivisor +
		float64(t.TotalLikes)*likeWeight +
		float64(t.TotalRetweets)*retweetWeight +
		float64(t.MaxFollowers)/followerDivisor
}

// Rank recomputes every token's trending score and returns a new slice
// sorted by score descending. The sort is stable: ties keep input order so
// re-ranking an already sorted batch is a no-op.
func Rank(tokens []model.RankedToken) []model.RankedToken {
	ranked := make([]model.RankedToken, len(tokens))
	copy(ranked, tokens)

	for i := range ranked {
		ranked[i].TrendingScore = Score(ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore > ranked[j].TrendingScore
	})

	return ranked
}
