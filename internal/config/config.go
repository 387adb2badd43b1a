package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig
	Log     LogConfig
	Metrics MetricsConfig
	Output  OutputConfig
	UI      UIConfig
}

// APIConfig holds catalog endpoint settings.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	PageLimit int           `mapstructure:"page_limit"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LogConfig holds log sink settings. The terminal belongs to the grid, so logs go to a file.
type LogConfig struct {
	Level  string
	File   string
	Pretty bool
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string
}

// OutputConfig controls where the confirmed selection is written.
type OutputConfig struct {
	Format string
	File   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartPage int `mapstructure:"start_page"`
}

var outputFormats = []string{"json", "yaml", "parquet", "none"}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"base-url":     "api.base_url",
	"page":         "ui.start_page",
	"output":       "output.format",
	"output-file":  "output.file",
	"log-file":     "log.file",
	"log-level":    "log.level",
	"metrics-addr": "metrics.addr",
}

// Load reads configuration from file, env and flags. Env var overrides use prefix ARTGRID_.
// flags may be nil; only flags the user changed override file and env values.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://api.artic.edu/api/v1")
	v.SetDefault("api.page_limit", 10)
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("api.user_agent", "artgrid/0.1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(os.Getenv("HOME"), ".local", "state", "artgrid", "artgrid.log"))
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.file", "")
	v.SetDefault("ui.start_page", 1)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ARTGRID_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "artgrid"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ARTGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default config file is fine, an explicit one must exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the grid cannot run with.
func (c Config) Validate() error {
	if c.UI.StartPage < 1 {
		return fmt.Errorf("ui.start_page must be >= 1 (got %d)", c.UI.StartPage)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive (got %s)", c.API.Timeout)
	}
	if c.API.PageLimit < 0 {
		return fmt.Errorf("api.page_limit must be >= 0 (got %d)", c.API.PageLimit)
	}
	if c.Output.Format == "parquet" && strings.TrimSpace(c.Output.File) == "" {
		return fmt.Errorf("output.format parquet needs output.file")
	}
	for _, f := range outputFormats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("output.format must be one of %s (got %q)", strings.Join(outputFormats, ", "), c.Output.Format)
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ~/.config/artgrid/config.toml)")
	fs.String("base-url", "", "artwork API base url")
	fs.Int("page", 1, "page to open first")
	fs.StringP("output", "o", "json", "selection output format: json, yaml, parquet or none")
	fs.String("output-file", "", "write the selection to this file instead of stdout")
	fs.String("log-file", "", "log file path")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
}
