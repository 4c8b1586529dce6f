package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pedroadiaz/meme-coin-analysis/internal/httpapi"
)

func serveCmd(ctx context.Context, configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(ctx, *configPath, *verbose)
			if err != nil {
				return err
			}
			defer rt.close()

			api := httpapi.NewServer(rt.service, rt.cfg.Discovery.MaxAge.Std(), rt.cfg.Discovery.MinMentions)
			server := &http.Server{
				Addr:         rt.cfg.Server.ListenAddr,
				Handler:      api.Handler(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", server.Addr).Msg("http api listening")
				errCh <- server.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				log.Info().Msg("shutting down http api")
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}
}
