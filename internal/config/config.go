// Package config loads and validates the scanner configuration. Credentials
// never live in the file; they are pulled from the environment on load.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pedroadiaz/meme-coin-analysis/internal/coindata"
	"github.com/pedroadiaz/meme-coin-analysis/internal/discovery"
	"github.com/pedroadiaz/meme-coin-analysis/internal/social"
)

// Duration is a time.Duration that YAML-decodes from Go duration strings
// ("3m", "10s") as well as raw nanosecond integers.
type Duration time.Duration

// Std converts back to the standard type.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err == nil {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration node: %w", err)
	}
	*d = Duration(n)
	return nil
}

// Environment variables carrying credentials.
const (
	EnvXBearerToken  = "X_BEARER_TOKEN"
	EnvAdvSearchKey  = "TWITTERAPI_IO_KEY"
	EnvMoralisAPIKey = "MORALIS_API_KEY"
)

// DiscoveryConfig bounds the discovery scan.
type DiscoveryConfig struct {
	Moralis     discovery.MoralisConfig     `yaml:"moralis"`
	DexScreener discovery.DexScreenerConfig `yaml:"dexscreener"`
	MaxAge      Duration                    `yaml:"max_age"`
	MinMentions int                         `yaml:"min_mentions"`
}

// SocialConfig wires the tiered mention client.
type SocialConfig struct {
	XAPI           social.XAPIConfig           `yaml:"xapi"`
	AdvancedSearch social.AdvancedSearchConfig `yaml:"advanced_search"`
	QuotaPath      string                      `yaml:"quota_path"`
	RedisAddr      string                      `yaml:"redis_addr"` // optional; overrides the file store
}

// EnrichConfig bounds the enrichment pool.
type EnrichConfig struct {
	Workers     int      `yaml:"workers"`
	TaskTimeout Duration `yaml:"task_timeout"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig configures the optional run store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // empty disables persistence
}

// Config is the root configuration.
type Config struct {
	Discovery DiscoveryConfig            `yaml:"discovery"`
	Social    SocialConfig               `yaml:"social"`
	Enrich    EnrichConfig               `yaml:"enrich"`
	CoinData  coindata.DexScreenerConfig `yaml:"coindata"`
	Server    ServerConfig               `yaml:"server"`
	Database  DatabaseConfig             `yaml:"database"`
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Discovery: DiscoveryConfig{
			Moralis:     discovery.DefaultMoralisConfig(),
			DexScreener: discovery.DefaultDexScreenerConfig(),
			MaxAge:      Duration(3 * time.Minute),
			MinMentions: 1,
		},
		Social: SocialConfig{
			XAPI:           social.DefaultXAPIConfig(),
			AdvancedSearch: social.DefaultAdvancedSearchConfig(),
			QuotaPath:      "rate_limits.json",
		},
		Enrich: EnrichConfig{
			Workers:     5,
			TaskTimeout: Duration(10 * time.Second),
		},
		CoinData: coindata.DefaultDexScreenerConfig(),
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
	}
}

// Load reads the YAML file over the defaults, then applies credentials from
// the environment. A missing path returns defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Social.XAPI.BearerToken = os.Getenv(EnvXBearerToken)
	cfg.Social.AdvancedSearch.APIKey = os.Getenv(EnvAdvSearchKey)
	cfg.Discovery.Moralis.APIKey = os.Getenv(EnvMoralisAPIKey)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot run.
func (c Config) Validate() error {
	if c.Discovery.MaxAge <= 0 {
		return fmt.Errorf("discovery.max_age must be positive")
	}
	if c.Discovery.MinMentions < 0 {
		return fmt.Errorf("discovery.min_mentions must not be negative")
	}
	if c.Enrich.Workers <= 0 {
		return fmt.Errorf("enrich.workers must be positive")
	}
	if c.Social.XAPI.DailyLimit <= 0 {
		return fmt.Errorf("social.xapi.daily_limit must be positive")
	}
	if c.Social.QuotaPath == "" && c.Social.RedisAddr == "" {
		return fmt.Errorf("social quota needs a file path or a redis address")
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must be set")
	}
	return nil
}
