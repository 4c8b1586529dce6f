package discovery

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pedroadiaz/meme-coin-analysis/internal/format"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// ListingSource fetches token listings created at or after the cutoff time.
// Implementations return partial results with nil error when individual
// records fail to parse.
type ListingSource interface {
	Name() string
	FetchNew(ctx context.Context, cutoff time.Time) ([]model.TokenCandidate, error)
}

// flexFloat tolerates listing APIs that send numeric fields as strings,
// numbers, or null. Unparseable values decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*f = flexFloat(n)
		}
	}
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// cleanLink normalizes an optional social link from a listing payload.
// Listing APIs hand these out schemeless or padded with whitespace.
func cleanLink(raw string) string {
	if raw == "" {
		return ""
	}
	return format.CleanURL(raw)
}
