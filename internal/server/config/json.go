package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/adboard/internal/flagx"
	"github.com/dmitrijs2005/adboard/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// both "5s" strings and integer nanoseconds. Absent fields leave the current
// value untouched.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	DatabaseDSN      string          `json:"database_dsn"`
	LogLevel         string          `json:"log_level"`
	PasswordHashCost int             `json:"password_hash_cost"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
}

// parseJson loads the file named by -c/-config into config. Nothing happens
// when neither flag is given. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.PasswordHashCost != 0 {
		config.PasswordHashCost = c.PasswordHashCost
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}
