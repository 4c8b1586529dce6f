package social

import (
	"time"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// MockMentions returns the fixed offline dataset used when no backend is
// configured. Content is deterministic so sentiment and ranking stages stay
// testable without credentials; only the timestamps are anchored to now.
func MockMentions() []model.Mention {
	return MockMentionsAt(time.Now().UTC())
}

// MockMentionsAt anchors the mock dataset's timestamps to a caller-supplied
// reference time.
func MockMentionsAt(now time.Time) []model.Mention {
	return []model.Mention{
		{
			TweetID: "1", CreatedAt: now.Add(-1 * time.Hour),
			Text:     "Just bought some of this new meme coin! To the moon! 🚀",
			AuthorID: "user1", Username: "cryptotrader1",
			Followers: 5432, Following: 234, Verified: false,
			Retweets: 45, Likes: 123, Replies: 12, Views: 8934, Lang: "en",
		},
		{
			TweetID: "2", CreatedAt: now.Add(-2 * time.Hour),
			Text:     "This coin is definitely a scam, be careful everyone!",
			AuthorID: "user2", Username: "defiexpert",
			Followers: 12543, Following: 543, Verified: true,
			Retweets: 234, Likes: 456, Replies: 89, Views: 45632, Lang: "en",
		},
		{
			TweetID: "3", CreatedAt: now.Add(-3 * time.Hour),
			Text:     "Interesting tokenomics on this one. Worth keeping an eye on.",
			AuthorID: "user3", Username: "tokenanalyst",
			Followers: 8932, Following: 123, Verified: false,
			Retweets: 67, Likes: 234, Replies: 23, Views: 12456, Lang: "en",
		},
		{
			TweetID: "4", CreatedAt: now.Add(-4 * time.Hour),
			Text:     "HODL gang where you at? This is going to explode! 💎🙌",
			AuthorID: "user4", Username: "memecoinlord",
			Followers: 23456, Following: 876, Verified: false,
			Retweets: 567, Likes: 1234, Replies: 234, Views: 87654, Lang: "en",
		},
		{
			TweetID: "5", CreatedAt: now.Add(-5 * time.Hour),
			Text:     "Rug pull alert! Dev wallets hold 40% of supply.",
			AuthorID: "user5", Username: "chainalysis",
			Followers: 45678, Following: 234, Verified: true,
			Retweets: 890, Likes: 2345, Replies: 456, Views: 234567, Lang: "en",
		},
		{
			TweetID: "6", CreatedAt: now.Add(-6 * time.Hour),
			Text:     "Bullish on this project! Great community and solid roadmap.",
			AuthorID: "user6", Username: "altcoinhunter",
			Followers: 18234, Following: 456, Verified: false,
			Retweets: 234, Likes: 678, Replies: 45, Views: 56789, Lang: "en",
		},
		{
			TweetID: "7", CreatedAt: now.Add(-7 * time.Hour),
			Text:     "Stay away from this token. Classic pump and dump scheme.",
			AuthorID: "user7", Username: "cryptodetective",
			Followers: 34567, Following: 123, Verified: true,
			Retweets: 456, Likes: 890, Replies: 123, Views: 123456, Lang: "en",
		},
		{
			TweetID: "8", CreatedAt: now.Add(-8 * time.Hour),
			Text:     "Loading my bags here. Risk/reward looks good.",
			AuthorID: "user8", Username: "degen_trader",
			Followers: 9876, Following: 567, Verified: false,
			Retweets: 123, Likes: 345, Replies: 34, Views: 34567, Lang: "en",
		},
	}
}
