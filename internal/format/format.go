// Package format holds human-facing rendering helpers for CLI and API output.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Number renders a value with K/M/B suffixes, two decimals.
func Number(num float64) string {
	switch {
	case num >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", num/1_000_000_000)
	case num >= 1_000_000:
		return fmt.Sprintf("%.2fM", num/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.2fK", num/1_000)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}

// TimeAgo renders the elapsed time since ts in coarse units.
func TimeAgo(ts time.Time, now time.Time) string {
	diff := now.Sub(ts)
	switch {
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours())/24)
	case diff >= time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	default:
		return "just now"
	}
}

var cashTagPattern = regexp.MustCompile(`\$([A-Z]+)`)

// ExtractTokenSymbol pulls the first $SYMBOL cash-tag out of text.
func ExtractTokenSymbol(text string) string {
	match := cashTagPattern.FindStringSubmatch(strings.ToUpper(text))
	if match == nil {
		return ""
	}
	return match[1]
}

// TweetURL builds the canonical status URL for a tweet.
func TweetURL(username, tweetID string) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", username, tweetID)
}

// CleanURL trims whitespace and forces an https scheme.
func CleanURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	return url
}

// ShortAddress abbreviates a contract address for log and table output.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:10] + "..."
}
