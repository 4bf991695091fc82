package infra

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// TestnetBaseURL is the public Binance USDT-M Futures Testnet endpoint.
const TestnetBaseURL = "https://testnet.binancefuture.com"

// ErrMissingCredentials is returned when no API key pair can be found
// in the environment or the config file.
var ErrMissingCredentials = errors.New(
	"BINANCE_API_KEY and BINANCE_API_SECRET must be set (environment or .env file)")

// Config holds every application setting. Secrets may come from the
// yaml file but environment variables always override them.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			BaseURL   string `yaml:"base_url"`
			APIKey    string `yaml:"api_key"`
			APISecret string `yaml:"api_secret"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no config file exists.
// Credentials are env-only in that case.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "futures-bot"
	cfg.App.Version = "dev"
	cfg.API.Binance.BaseURL = TestnetBaseURL
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads the yaml config (optional), loads a local .env if
// present, and applies environment overrides. Fail fast on an invalid file.
func LoadConfig(path string) (*Config, error) {
	// Best effort: a missing .env is the normal case outside dev setups.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Optional file; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	url := c.API.Binance.BaseURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("invalid Binance base URL: %s", url)
	}
	if c.Logging.Level != "" {
		switch strings.ToLower(c.Logging.Level) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("unknown log level: %s", c.Logging.Level)
		}
	}
	return nil
}

// Credentials returns the API key pair, or ErrMissingCredentials when
// either half is absent.
func (c *Config) Credentials() (key, secret string, err error) {
	key = c.API.Binance.APIKey
	secret = c.API.Binance.APISecret
	if key == "" || secret == "" {
		return "", "", ErrMissingCredentials
	}
	return key, secret, nil
}

// overrideWithEnv applies environment variables over file values.
// Environment wins so secrets can stay out of the config file.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		cfg.API.Binance.APISecret = secret
	}
	if url := os.Getenv("BINANCE_FUTURES_BASE_URL"); url != "" {
		cfg.API.Binance.BaseURL = url
	}
	if level := os.Getenv("FUTURES_BOT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
