// Package sentiment classifies social mentions into positive/negative/neutral
// buckets and aggregates engagement per bucket. The classifier is a soft
// heuristic: a lexicon polarity signal blended with a token-ratio signal.
package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Signal blend weights and classification thresholds.
const (
	lexiconWeight     = 0.7
	ratioWeight       = 0.3
	positiveThreshold = 0.1
	negativeThreshold = -0.1

	// Scaling constant for normalizing the valence sum into [-1, 1].
	normalizationAlpha = 15.0

	// Dampening applied to a negated sentiment token.
	negationFactor = -0.74
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	cashtagPattern = regexp.MustCompile(`\$([A-Za-z][A-Za-z0-9]*)`)
)

// Analyzer scores text polarity against an augmented lexicon. Construction
// merges the crypto overrides exactly once; Classify is a pure function of
// its input afterwards.
type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer builds an analyzer with the domain lexicon applied over the
// general-purpose one.
func NewAnalyzer() *Analyzer {
	lexicon := make(map[string]float64, len(baseLexicon)+len(cryptoLexicon))
	for word, valence := range baseLexicon {
		lexicon[word] = valence
	}
	for word, valence := range cryptoLexicon {
		lexicon[word] = valence
	}
	return &Analyzer{lexicon: lexicon}
}

// Classify returns the sentiment label and compound score in [-1, 1] for a
// text. Identical input always yields identical output.
func (a *Analyzer) Classify(text string) (string, float64) {
	tokens := tokenize(cleanText(text))

	var sum float64
	var positive, negative int
	negated := false

	for _, token := range tokens {
		if negators[token] {
			negated = true
			continue
		}

		valence, ok := a.lexicon[token]
		if !ok {
			continue
		}
		if negated {
			valence *= negationFactor
			negated = false
		}
		sum += valence
		if valence > 0 {
			positive++
		} else if valence < 0 {
			negative++
		}
	}

	lexiconScore := sum / math.Sqrt(sum*sum+normalizationAlpha)

	var ratioScore float64
	if positive+negative > 0 {
		ratioScore = float64(positive-negative) / float64(positive+negative)
	}

	compound := lexiconScore*lexiconWeight + ratioScore*ratioWeight
	compound = math.Max(-1, math.Min(1, compound))

	switch {
	case compound >= positiveThreshold:
		return model.SentimentPositive, compound
	case compound <= negativeThreshold:
		return model.SentimentNegative, compound
	default:
		return model.SentimentNeutral, compound
	}
}

// Analyze classifies a batch of mentions. The result order matches the input.
func (a *Analyzer) Analyze(mentions []model.Mention) []model.SentimentResult {
	results := make([]model.SentimentResult, 0, len(mentions))
	for _, mention := range mentions {
		label, score := a.Classify(mention.Text)
		results = append(results, model.SentimentResult{
			Mention:        mention,
			Sentiment:      label,
			SentimentScore: score,
		})
	}
	return results
}

// cleanText strips URLs and @mentions, then unwraps hashtags and cashtags to
// bare words so the lexicon can see them.
func cleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "$1")
	text = cashtagPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,!?;:()[]\"”“…")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
