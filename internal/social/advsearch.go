package social

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
	"github.com/pedroadiaz/meme-coin-analysis/internal/telemetry"
)

// AdvancedSearchConfig configures the paginated secondary backend.
type AdvancedSearchConfig struct {
	APIKey   string        `yaml:"-"` // from env, never from file
	BaseURL  string        `yaml:"base_url"`
	MaxPages int           `yaml:"max_pages"` // hard cap on API turns per search
	PageRPS  float64       `yaml:"page_rps"`  // inter-page politeness rate
	Timeout  time.Duration `yaml:"timeout"`
}

// DefaultAdvancedSearchConfig returns conservative pagination defaults.
func DefaultAdvancedSearchConfig() AdvancedSearchConfig {
	return AdvancedSearchConfig{
		BaseURL:  "https://api.twitterapi.io/twitter",
		MaxPages: 10,
		PageRPS:  2.0,
		Timeout:  10 * time.Second,
	}
}

// AdvancedSearchClient is the secondary mention backend: a cursor-paginated
// search with a page cap and a token-bucket delay between pages.
type AdvancedSearchClient struct {
	config     AdvancedSearchConfig
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	host       string
}

// NewAdvancedSearchClient creates the secondary backend.
func NewAdvancedSearchClient(config AdvancedSearchConfig) *AdvancedSearchClient {
	if config.MaxPages <= 0 {
		config.MaxPages = 10
	}
	if config.PageRPS <= 0 {
		config.PageRPS = 2.0
	}

	host := config.BaseURL
	if parsed, err := url.Parse(config.BaseURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	return &AdvancedSearchClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    ratelimit.NewLimiter(config.PageRPS, 1),
		host:       host,
	}
}

// advanced search wire format
type advSearchResponse struct {
	Tweets []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		CreatedAt string `json:"createdAt"`
		Lang      string `json:"lang"`
		Author    struct {
			ID             string `json:"id"`
			UserName       string `json:"userName"`
			Followers      int64  `json:"followers"`
			Following      int64  `json:"following"`
			IsVerified     bool   `json:"isVerified"`
			IsBlueVerified bool   `json:"isBlueVerified"`
		} `json:"author"`
		RetweetCount int64 `json:"retweetCount"`
		LikeCount    int64 `json:"likeCount"`
		ReplyCount   int64 `json:"replyCount"`
		ViewCount    int64 `json:"viewCount"`
	} `json:"tweets"`
	HasNextPage bool   `json:"has_next_page"`
	NextCursor  string `json:"next_cursor"`
}

// createdAt layout used by the advanced search API.
const advSearchTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// SearchMentions pages through results until an empty page, the page cap, or
// maxResults. The combined result is sorted newest-first.
func (c *AdvancedSearchClient) SearchMentions(ctx context.Context, contractAddress, symbol string, maxResults int) ([]model.Mention, error) {
	query := BuildQuery(contractAddress, symbol)
	if query == "" {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = 100
	}

	var mentions []model.Mention
	cursor := ""

	for page := 0; page < c.config.MaxPages; page++ {
		if page > 0 {
			// Politeness delay between pages.
			if err := c.limiter.Wait(ctx, c.host); err != nil {
				return nil, err
			}
		}

		payload, err := c.fetchPage(ctx, query, cursor)
		if err != nil {
			telemetry.SocialRequests.WithLabelValues("advsearch", "error").Inc()
			return nil, err
		}
		if len(payload.Tweets) == 0 {
			break
		}

		for _, tweet := range payload.Tweets {
			createdAt, err := time.Parse(advSearchTimeLayout, tweet.CreatedAt)
			if err != nil {
				createdAt = time.Now()
			}
			mentions = append(mentions, model.Mention{
				TweetID:   tweet.ID,
				CreatedAt: createdAt.UTC(),
				Text:      tweet.Text,
				AuthorID:  tweet.Author.ID,
				Username:  tweet.Author.UserName,
				Followers: tweet.Author.Followers,
				Following: tweet.Author.Following,
				Verified:  tweet.Author.IsVerified || tweet.Author.IsBlueVerified,
				Retweets:  tweet.RetweetCount,
				Likes:     tweet.LikeCount,
				Replies:   tweet.ReplyCount,
				Views:     tweet.ViewCount,
				Lang:      tweet.Lang,
			})
		}

		log.Debug().Int("page", page+1).Int("tweets", len(payload.Tweets)).Msg("advanced search page fetched")

		if len(mentions) >= maxResults {
			mentions = mentions[:maxResults]
			break
		}
		if !payload.HasNextPage || payload.NextCursor == "" {
			break
		}
		cursor = payload.NextCursor
	}

	sortByRecency(mentions)
	telemetry.SocialRequests.WithLabelValues("advsearch", "ok").Inc()
	return mentions, nil
}

func (c *AdvancedSearchClient) fetchPage(ctx context.Context, query, cursor string) (*advSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("queryType", "Latest")
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/tweet/advanced_search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advanced search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advanced search HTTP %d", resp.StatusCode)
	}

	var payload advSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode advanced search response: %w", err)
	}
	return &payload, nil
}
