package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

func TestClassify_BullishSlangIsPositive(t *testing.T) {
	analyzer := NewAnalyzer()

	label, score := analyzer.Classify("Just bought some of this new meme coin! To the moon! 🚀")
	assert.Equal(t, model.SentimentPositive, label)
	assert.Greater(t, score, 0.1)
	assert.LessOrEqual(t, score, 1.0)
}

func TestClassify_ScamTalkIsNegative(t *testing.T) {
	analyzer := NewAnalyzer()

	label, score := analyzer.Classify("This coin is definitely a scam, be careful everyone!")
	assert.Equal(t, model.SentimentNegative, label)
	assert.Less(t, score, -0.1)
	assert.GreaterOrEqual(t, score, -1.0)
}

func TestClassify_PlainTextIsNeutral(t *testing.T) {
	analyzer := NewAnalyzer()

	label, score := analyzer.Classify("Interesting tokenomics on this one. Worth keeping an eye on.")
	assert.Equal(t, model.SentimentNeutral, label)
	assert.InDelta(t, 0.0, score, 0.1)
}

func TestClassify_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	text := "HODL gang where you at? This is going to explode! 💎🙌"

	firstLabel, firstScore := analyzer.Classify(text)
	for i := 0; i < 10; i++ {
		label, score := analyzer.Classify(text)
		assert.Equal(t, firstLabel, label)
		assert.Equal(t, firstScore, score)
	}

	// A second analyzer instance must agree: the lexicon merge happens once
	// at construction and is identical every time.
	otherLabel, otherScore := NewAnalyzer().Classify(text)
	assert.Equal(t, firstLabel, otherLabel)
	assert.Equal(t, firstScore, otherScore)
}

func TestClassify_CleansNoiseBeforeScoring(t *testing.T) {
	analyzer := NewAnalyzer()

	// The URL and @mention carry no valence; #bullish and $MOON must unwrap
	// so the lexicon sees the bare words.
	_, noisy := analyzer.Classify("@whale check https://t.co/xyz #bullish")
	_, bare := analyzer.Classify("check bullish")
	assert.Equal(t, bare, noisy)
}

func TestClassify_NegationFlipsValence(t *testing.T) {
	analyzer := NewAnalyzer()

	_, plain := analyzer.Classify("this is a gem")
	_, negated := analyzer.Classify("this is not a gem")
	assert.Greater(t, plain, 0.0)
	assert.Less(t, negated, plain)
}

func TestClassify_EmptyTextIsNeutral(t *testing.T) {
	analyzer := NewAnalyzer()

	label, score := analyzer.Classify("")
	assert.Equal(t, model.SentimentNeutral, label)
	assert.Zero(t, score)
}

func TestClassify_ThresholdSemantics(t *testing.T) {
	analyzer := NewAnalyzer()

	// Every classified score must land in the bucket its label claims.
	texts := []string{
		"moon moon moon",
		"rug scam dump",
		"hello world",
		"buy now, bearish later",
		"pump it",
	}
	for _, text := range texts {
		label, score := analyzer.Classify(text)
		switch label {
		case model.SentimentPositive:
			assert.GreaterOrEqual(t, score, 0.1, "text %q", text)
		case model.SentimentNegative:
			assert.LessOrEqual(t, score, -0.1, "text %q", text)
		case model.SentimentNeutral:
			assert.Greater(t, score, -0.1, "text %q", text)
			assert.Less(t, score, 0.1, "text %q", text)
		}
	}
}

func TestAnalyze_PreservesOrderAndMentions(t *testing.T) {
	analyzer := NewAnalyzer()
	mentions := []model.Mention{
		{TweetID: "1", Text: "bullish on this gem", Followers: 100},
		{TweetID: "2", Text: "total rug, avoid", Followers: 200},
	}

	results := analyzer.Analyze(mentions)
	assert.Len(t, results, 2)
	assert.Equal(t, "1", results[0].TweetID)
	assert.Equal(t, model.SentimentPositive, results[0].Sentiment)
	assert.Equal(t, "2", results[1].TweetID)
	assert.Equal(t, model.SentimentNegative, results[1].Sentiment)
	assert.Equal(t, int64(200), results[1].Followers, "mention fields carry through")
}
