package sentiment

// Valences use the familiar -4..+4 polarity range; the compound score
// normalizes the token sum back into [-1, 1].

// baseLexicon covers general-purpose sentiment vocabulary.
var baseLexicon = map[string]float64{
	"good":      1.9,
	"great":     3.1,
	"excellent": 2.7,
	"amazing":   2.8,
	"awesome":   3.1,
	"love":      3.2,
	"best":      3.2,
	"nice":      1.8,
	"happy":     2.7,
	"win":       2.8,
	"winning":   2.4,
	"profit":    2.2,
	"gain":      2.0,
	"gains":     2.0,
	"solid":     1.5,
	"strong":    2.3,
	"explode":   1.6,
	"alert":     -0.6,
	"bad":       -2.5,
	"terrible":  -2.1,
	"awful":     -2.0,
	"horrible":  -2.5,
	"hate":      -2.7,
	"worst":     -3.1,
	"lose":      -2.5,
	"loss":      -1.3,
	"losses":    -1.3,
	"weak":      -1.9,
	"fear":      -2.2,
	"risky":     -1.4,
	"danger":    -2.4,
	"dangerous": -2.4,
	"dead":      -3.3,
	"fail":      -2.5,
	"failed":    -2.3,
}

// cryptoLexicon holds the domain overrides merged over the base lexicon once
// at analyzer construction. Slang the general lexicon misreads (pump, dump,
// short) gets pinned to its trading meaning.
var cryptoLexicon = map[string]float64{
	"moon":        3.0,
	"mooning":     3.0,
	"hodl":        2.0,
	"bullish":     2.5,
	"pump":        2.0,
	"gem":         2.0,
	"rocket":      2.0,
	"🚀":           2.0,
	"💎":           1.5,
	"🙌":           1.5,
	"buy":         1.5,
	"long":        1.5,
	"undervalued": 2.0,
	"breakout":    2.0,
	"rug":         -3.0,
	"rugpull":     -3.0,
	"scam":        -3.0,
	"dump":        -2.5,
	"bearish":     -2.5,
	"crash":       -2.5,
	"sell":        -1.5,
	"short":       -1.5,
	"overvalued":  -2.0,
	"ponzi":       -3.0,
	"fake":        -2.5,
	"warning":     -2.0,
	"careful":     -1.5,
	"avoid":       -2.0,
}

// negators flip the valence of the following sentiment-bearing token.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"dont":    true,
	"don't":   true,
	"cant":    true,
	"can't":   true,
	"isnt":    true,
	"isn't":   true,
	"wont":    true,
	"won't":   true,
	"aint":    true,
	"ain't":   true,
	"without": true,
}
