package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/app"
	"github.com/pedroadiaz/meme-coin-analysis/internal/coindata"
	"github.com/pedroadiaz/meme-coin-analysis/internal/config"
	"github.com/pedroadiaz/meme-coin-analysis/internal/discovery"
	"github.com/pedroadiaz/meme-coin-analysis/internal/enrich"
	"github.com/pedroadiaz/meme-coin-analysis/internal/persistence"
	"github.com/pedroadiaz/meme-coin-analysis/internal/social"
)

// runtime bundles the wired service and its teardown.
type runtime struct {
	cfg     config.Config
	service *app.Service
	store   *persistence.Store
}

func (rt *runtime) close() {
	if err := rt.store.Close(); err != nil {
		log.Warn().Err(err).Msg("closing run store")
	}
}

// buildRuntime wires the full pipeline from configuration. Backends without
// credentials are simply left out; the tiered client and discovery layer
// degrade on their own.
func buildRuntime(ctx context.Context, configPath string, verbose bool) (*runtime, error) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var quotaStore social.QuotaStore
	if cfg.Social.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Social.RedisAddr})
		quotaStore = social.NewRedisStore(client, "")
		log.Info().Str("addr", cfg.Social.RedisAddr).Msg("using redis quota store")
	} else {
		quotaStore = social.NewFileStore(cfg.Social.QuotaPath)
	}

	quota, err := social.NewQuota(ctx, quotaStore, cfg.Social.XAPI.DailyLimit)
	if err != nil {
		return nil, fmt.Errorf("init quota: %w", err)
	}

	var primary, secondary social.Client
	if cfg.Social.XAPI.BearerToken != "" {
		primary = social.NewXAPIClient(cfg.Social.XAPI, quota)
	} else {
		log.Warn().Msg("no bearer token configured, primary mention backend disabled")
	}
	if cfg.Social.AdvancedSearch.APIKey != "" {
		secondary = social.NewAdvancedSearchClient(cfg.Social.AdvancedSearch)
	} else {
		log.Warn().Msg("no advanced search key configured, secondary mention backend disabled")
	}
	socialClient := social.NewTieredClient(primary, secondary)

	var sources []discovery.ListingSource
	if cfg.Discovery.Moralis.APIKey != "" {
		sources = append(sources, discovery.NewMoralisSource(cfg.Discovery.Moralis))
	} else {
		log.Warn().Msg("no moralis key configured, pump.fun listings disabled")
	}
	sources = append(sources, discovery.NewDexScreenerSource(cfg.Discovery.DexScreener))

	var store *persistence.Store
	if cfg.Database.DSN != "" {
		store, err = persistence.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open run store: %w", err)
		}
		log.Info().Msg("run persistence enabled")
	}

	service := app.NewService(
		discovery.NewDiscoverer(sources...),
		enrich.NewEnricher(socialClient,
			enrich.WithWorkers(cfg.Enrich.Workers),
			enrich.WithTaskTimeout(cfg.Enrich.TaskTimeout.Std())),
		socialClient,
		coindata.NewDexScreenerProvider(cfg.CoinData),
		store,
	)

	return &runtime{cfg: cfg, service: service, store: store}, nil
}
