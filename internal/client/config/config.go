package config

import "time"

// Config holds runtime settings for the adboard command-line client.
//
// Fields:
//   - ServerAddr: base URL of the HTTP API, e.g. http://127.0.0.1:8080.
//   - Timeout: upper bound for a single API call.
type Config struct {
	ServerAddr string
	Timeout    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.Timeout = 5 * time.Second
}

// LoadConfig constructs a Config from defaults overlaid with the
// environment. The JSON file and command-line flags are applied later by
// the cobra root command, which owns the flag set.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}
