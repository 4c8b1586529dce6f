// Package risk implements the rule-based risk assessment over coin metrics.
// The inputs (insider/sniper holdings, bundler count) are heuristic stand-ins
// provided by the market-data collaborator; the rules score them as given.
package risk

import (
	"fmt"

	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Risk level thresholds.
const (
	highThreshold   = 70
	mediumThreshold = 40
)

// Assess computes the additive rule-table score for a coin snapshot.
// Rules are independent, evaluated in fixed order, and each contributes at
// most once; the maximum total is 100, so the score needs no clamping.
func Assess(metrics model.CoinMetrics) model.RiskAssessment {
	score := 0
	var factors []string

	switch {
	case metrics.InsiderHoldings > 30:
		score += 30
		factors = append(factors, fmt.Sprintf("High insider holdings (%.1f%%)", metrics.InsiderHoldings))
	case metrics.InsiderHoldings > 20:
		score += 20
		factors = append(factors, fmt.Sprintf("Moderate insider holdings (%.1f%%)", metrics.InsiderHoldings))
	}

	switch {
	case metrics.SniperHoldings > 15:
		score += 25
		factors = append(factors, fmt.Sprintf("High sniper activity (%.1f%%)", metrics.SniperHoldings))
	case metrics.SniperHoldings > 10:
		score += 15
		factors = append(factors, fmt.Sprintf("Moderate sniper activity (%.1f%%)", metrics.SniperHoldings))
	}

	switch {
	case metrics.Bundlers > 5:
		score += 20
		factors = append(factors, fmt.Sprintf("High bundler count (%d)", metrics.Bundlers))
	case metrics.Bundlers >= 3:
		score += 10
		factors = append(factors, fmt.Sprintf("Moderate bundler count (%d)", metrics.Bundlers))
	}

	if !metrics.LPBurned {
		score += 25
		factors = append(factors, "LP not burned")
	}

	return model.RiskAssessment{
		Score:   score,
		Level:   levelFor(score),
		Factors: factors,
	}
}

func levelFor(score int) string {
	switch {
	case score >= highThreshold:
		return model.RiskHigh
	case score >= mediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
