package config

import "time"

// Config holds runtime settings for the Everli CLI.
//
// Fields:
//   - BaseURL: Everli API host.
//   - Email, Password: account credentials; the CLI prompts for missing ones.
//   - Location: optional location id; empty means "resolve from the session".
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel, LogFormat: passed to logging.New.
type Config struct {
	BaseURL        string
	Email          string
	Password       string
	Location       string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api.everli.com"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
