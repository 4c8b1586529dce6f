package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pedroadiaz/meme-coin-analysis/internal/app"
	"github.com/pedroadiaz/meme-coin-analysis/internal/format"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
	"github.com/pedroadiaz/meme-coin-analysis/internal/sentiment"
)

func analyzeCmd(ctx context.Context, configPath *string, verbose *bool) *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "analyze <contract-address>",
		Short: "Deep analysis of one token: sentiment, influencers, risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(ctx, *configPath, *verbose)
			if err != nil {
				return err
			}
			defer rt.close()

			report, err := rt.service.Analyze(ctx, args[0], symbol)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "token symbol for cash-tag search")
	return cmd
}

func printReport(report *app.AnalysisReport) {
	fmt.Printf("Token %s (%s)\n", report.Symbol, format.ShortAddress(report.ContractAddress))
	fmt.Printf("Price %s | MC %s | Liquidity %s | 24h Vol %s\n",
		report.CoinMetrics.Price,
		format.Number(report.CoinMetrics.MarketCap),
		format.Number(report.CoinMetrics.Liquidity),
		format.Number(report.CoinMetrics.Volume24h))

	agg := report.Aggregate
	fmt.Printf("\nMentions: %d (%d positive / %d negative / %d neutral, avg %.2f)\n",
		agg.Total, agg.PositiveCount, agg.NegativeCount, agg.NeutralCount, agg.AverageSentiment)

	if len(report.Influencers) > 0 {
		fmt.Println("\nTop voices:")
		for i, inf := range report.Influencers {
			if i == 3 {
				break
			}
			rate := sentiment.EngagementRate(inf.Views, inf.Likes+inf.Retweets+inf.Replies)
			fmt.Printf("  @%s (%s followers, %s, %.1f%% engagement): %s\n",
				inf.Username,
				format.Number(float64(inf.Followers)),
				inf.Sentiment,
				rate,
				inf.Text)
			if inf.TweetID != "" {
				fmt.Printf("    %s\n", format.TweetURL(inf.Username, inf.TweetID))
			}
		}
	}

	fmt.Printf("\nRisk: %s (score %d)\n", riskBadge(report.Risk.Level), report.Risk.Score)
	for _, factor := range report.Risk.Factors {
		fmt.Printf("  - %s\n", factor)
	}
	if len(report.Risk.Factors) == 0 {
		fmt.Println("  no risk factors flagged")
	}
}

func riskBadge(level string) string {
	switch level {
	case model.RiskHigh:
		return "🔴 " + level
	case model.RiskMedium:
		return "🟡 " + level
	default:
		return "🟢 " + level
	}
}
