package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrijs2005/estatehub/internal/client/storage"
	"github.com/dmitrijs2005/estatehub/internal/logging"
	"github.com/spf13/pflag"
)

const DefaultAPIBaseURL = "http://localhost:5000/api"

// Config holds runtime settings for the estatehub CLI.
//
// RequestTimeout bounds every API request; zero means no timeout.
type Config struct {
	APIBaseURL     string        `env:"ESTATEHUB_API_URL"`
	DBPath         string        `env:"ESTATEHUB_DB"`
	RequestTimeout time.Duration `env:"ESTATEHUB_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"ESTATEHUB_LOG_LEVEL"`
	NoColor        bool          `env:"ESTATEHUB_NO_COLOR"`
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DBPath = storage.DefaultPath()
	c.RequestTimeout = 0
	c.LogLevel = "warn"
	c.NoColor = false
	c.Verbose = false
}

// Level is the minimum level the logger writes. Verbose wins over LogLevel.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("api url %q must start with http:// or https://", c.APIBaseURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by the
// --config flag, then the environment (with .env), then the remaining flags.
// Later sources take precedence over earlier ones. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	var path string
	if fs != nil {
		path, _ = fs.GetString(FlagConfig)
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
