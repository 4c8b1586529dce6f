package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

// XAPIConfig configures the quota-limited primary backend (official API v2
// recent search).
type XAPIConfig struct {
	BearerToken string        `yaml:"-"` // from env, never from file
	BaseURL     string        `yaml:"base_url"`
	DailyLimit  int           `yaml:"daily_limit"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultXAPIConfig returns the free-tier defaults.
func DefaultXAPIConfig() XAPIConfig {
	return XAPIConfig{
		BaseURL:    "https://api.twitter.com/2",
		DailyLimit: 500,
		Timeout:    10 * time.Second,
	}
}

// XAPIClient is the primary mention backend. Every served search consumes one
// unit of the shared daily quota; an upstream 429 exhausts the quota for the
// rest of the UTC day.
type XAPIClient struct {
	config     XAPIConfig
	quota      *Quota
	httpClient *http.Client
}

// NewXAPIClient creates the primary backend over a shared quota.
func NewXAPIClient(config XAPIConfig, quota *Quota) *XAPIClient {
	return &XAPIClient{
		config:     config,
		quota:      quota,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// recent search wire format
type xapiSearchResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		CreatedAt     string `json:"created_at"`
		AuthorID      string `json:"author_id"`
		Lang          string `json:"lang"`
		PublicMetrics struct {
			RetweetCount    int64 `json:"retweet_count"`
			ReplyCount      int64 `json:"reply_count"`
			LikeCount       int64 `json:"like_count"`
			ImpressionCount int64 `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []xapiUser `json:"users"`
	} `json:"includes"`
}

type xapiUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Verified      bool   `json:"verified"`
	PublicMetrics struct {
		FollowersCount int64 `json:"followers_count"`
		FollowingCount int64 `json:"following_count"`
	} `json:"public_metrics"`
}

// SearchMentions queries the recent-search endpoint once. Quota is reserved
// and persisted before the request goes out so concurrent callers cannot
// overrun the daily budget; an attempt that never reaches a served response
// refunds the reservation. Only a served search counts against the day.
func (c *XAPIClient) SearchMentions(ctx context.Context, contractAddress, symbol string, maxResults int) ([]model.Mention, error) {
	query := BuildQuery(contractAddress, symbol)
	if query == "" {
		return nil, nil
	}

	if err := c.quota.Acquire(ctx); err != nil {
		telemetry.SocialRequests.WithLabelValues("xapi", "quota_exhausted").Inc()
		return nil, err
	}

	if maxResults <= 0 || maxResults > 100 {
		maxResults = 100 // per-request endpoint cap
	}

	params := url.Values{}
	params.Set("query", query+" -is:retweet")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("tweet.fields", "created_at,author_id,public_metrics,lang")
	params.Set("user.fields", "username,verified,public_metrics")
	params.Set("expansions", "author_id")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/tweets/search/recent?"+params.Encode(), nil)
	if err != nil {
		c.quota.Release(ctx)
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.BearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.SocialRequests.WithLabelValues("xapi", "transport_error").Inc()
		c.quota.Release(ctx)
		return nil, fmt.Errorf("recent search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		telemetry.SocialRequests.WithLabelValues("xapi", "rate_limited").Inc()
		if err := c.quota.Exhaust(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to persist exhausted quota")
		}
		return nil, fmt.Errorf("upstream rate limited: %w", ErrQuotaExhausted)
	}
	if resp.StatusCode != http.StatusOK {
		telemetry.SocialRequests.WithLabelValues("xapi", "http_error").Inc()
		c.quota.Release(ctx)
		return nil, fmt.Errorf("recent search HTTP %d", resp.StatusCode)
	}

	var payload xapiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.quota.Release(ctx)
		return nil, fmt.Errorf("decode recent search response: %w", err)
	}

	users := make(map[string]xapiUser, len(payload.Includes.Users))
	for _, user := range payload.Includes.Users {
		users[user.ID] = user
	}

	mentions := make([]model.Mention, 0, len(payload.Data))
	for _, tweet := range payload.Data {
		createdAt, err := time.Parse(time.RFC3339, tweet.CreatedAt)
		if err != nil {
			createdAt = time.Now().UTC()
		}

		author := users[tweet.AuthorID]
		mentions = append(mentions, model.Mention{
			TweetID:   tweet.ID,
			CreatedAt: createdAt.UTC(),
			Text:      tweet.Text,
			AuthorID:  tweet.AuthorID,
			Username:  author.Username,
			Followers: author.PublicMetrics.FollowersCount,
			Following: author.PublicMetrics.FollowingCount,
			Verified:  author.Verified,
			Retweets:  tweet.PublicMetrics.RetweetCount,
			Likes:     tweet.PublicMetrics.LikeCount,
			Replies:   tweet.PublicMetrics.ReplyCount,
			Views:     tweet.PublicMetrics.ImpressionCount,
			Lang:      tweet.Lang,
		})
	}
	sortByRecency(mentions)

	telemetry.SocialRequests.WithLabelValues("xapi", "ok").Inc()
	log.Debug().Int("mentions", len(mentions)).Str("query", query).Msg("recent search completed")
	return mentions, nil
}
