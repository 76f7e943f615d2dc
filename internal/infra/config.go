package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// API tiers supported by CoinGecko. The tier decides both the base URL and
// the credential header attached to every upstream request.
const (
	TierPro  = "pro"
	TierDemo = "demo"
)

// Config holds the full application configuration.
// Loaded from yaml, then overridden with environment variables.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		CoinGecko struct {
			RestURL string `yaml:"rest_url"`
			APIKey  string `yaml:"api_key"`
			Tier    string `yaml:"tier"`
		} `yaml:"coingecko"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in configuration used when no config file
// exists. The credential has no default; it must come from the environment.
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "coingecko-mcp"
	cfg.App.Version = "1.0.0"
	cfg.API.CoinGecko.Tier = TierPro
	cfg.Logging.Level = "info"
	return &cfg
}

// LoadConfig reads and parses the config file. A missing file is not an
// error (defaults apply); a malformed file is (Fail Fast).
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if cfg.API.CoinGecko.APIKey != "" {
			// Stderr directly: slog is not configured until after config load.
			fmt.Fprintln(os.Stderr, "⚠️  API key found in config file; prefer the COINGECKO_API_KEY environment variable")
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity. The upstream credential is checked
// here, once, at startup: a missing key is a fatal configuration error, never
// a per-call error.
func (c *Config) Validate() error {
	tier := strings.ToLower(c.API.CoinGecko.Tier)
	if tier != TierPro && tier != TierDemo {
		return fmt.Errorf("unknown CoinGecko API tier: %q (want %q or %q)", c.API.CoinGecko.Tier, TierPro, TierDemo)
	}
	c.API.CoinGecko.Tier = tier

	if c.API.CoinGecko.APIKey == "" {
		return fmt.Errorf("CoinGecko API key is required (set COINGECKO_API_KEY or api.coingecko.api_key)")
	}

	if url := c.API.CoinGecko.RestURL; url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("invalid CoinGecko REST URL: %s", url)
	}

	return nil
}

// overrideWithEnv applies environment variables over file values.
// Environment wins so secrets can stay out of config files.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("COINGECKO_API_KEY"); key != "" {
		cfg.API.CoinGecko.APIKey = key
	}
	if tier := os.Getenv("COINGECKO_API_TIER"); tier != "" {
		cfg.API.CoinGecko.Tier = tier
	}
	if url := os.Getenv("COINGECKO_REST_URL"); url != "" {
		cfg.API.CoinGecko.RestURL = url
	}
}
