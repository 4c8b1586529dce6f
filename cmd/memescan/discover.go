package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pedroadiaz/meme-coin-analysis/internal/discovery"
	"github.com/pedroadiaz/meme-coin-analysis/internal/format"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

func discoverCmd(ctx context.Context, configPath *string, verbose *bool) *cobra.Command {
	var maxAge time.Duration
	var minMentions int
	var offline bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Scan for new tokens and rank them by social activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if offline {
				printTrending(discovery.MockTrendingTokens())
				return nil
			}

			rt, err := buildRuntime(ctx, *configPath, *verbose)
			if err != nil {
				return err
			}
			defer rt.close()

			if maxAge == 0 {
				maxAge = rt.cfg.Discovery.MaxAge.Std()
			}
			if minMentions < 0 {
				minMentions = rt.cfg.Discovery.MinMentions
			}

			tokens, err := rt.service.Discover(ctx, maxAge, minMentions)
			if err != nil {
				return err
			}
			printTrending(tokens)
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 0, "token age window (default from config)")
	cmd.Flags().IntVar(&minMentions, "min-mentions", -1, "minimum mention count (default from config)")
	cmd.Flags().BoolVar(&offline, "offline", false, "print the built-in sample dataset, no live sources or credentials needed")
	return cmd
}

func printTrending(tokens []model.RankedToken) {
	if len(tokens) == 0 {
		fmt.Println("No trending tokens found in the window.")
		return
	}

	now := time.Now().UTC()
	fmt.Printf("%-4s %-10s %-14s %-9s %-10s %-10s %-10s %s\n",
		"#", "SYMBOL", "ADDRESS", "AGE", "MENTIONS", "VIEWS", "SCORE", "TOP VOICE")
	for i, token := range tokens {
		topVoice := "-"
		if token.TopInfluencer != nil {
			topVoice = fmt.Sprintf("@%s (%s)", token.TopInfluencer.Username, format.Number(float64(token.TopInfluencer.Followers)))
		}
		fmt.Printf("%-4d %-10s %-14s %-9s %-10d %-10s %-10.1f %s\n",
			i+1,
			token.Symbol,
			format.ShortAddress(token.ContractAddress),
			format.TimeAgo(token.CreatedAt, now),
			token.TwitterMentions,
			format.Number(float64(token.TotalViews)),
			token.TrendingScore,
			topVoice,
		)
	}
}
