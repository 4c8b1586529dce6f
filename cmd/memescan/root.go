package main

import (
	"context"

	"github.com/spf13/cobra"
)

const (
	appName = "memescan"
	version = "v0.3.0"
)

// Execute builds the command tree and runs it.
func Execute(ctx context.Context) error {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:     appName,
		Short:   "Meme-token trend scanner",
		Long:    "Discovers freshly launched meme tokens, ranks them by social activity, and scores single-token sentiment and risk.",
		Version: version,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (optional)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(discoverCmd(ctx, &configPath, &verbose))
	root.AddCommand(analyzeCmd(ctx, &configPath, &verbose))
	root.AddCommand(serveCmd(ctx, &configPath, &verbose))

	return root.Execute()
}
