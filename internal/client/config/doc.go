// Package config loads runtime configuration for the adboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: ADBOARD_ADDR, ADBOARD_TIMEOUT (a .env file is honoured).
//  3. Optional JSON file passed with --config (see LoadJSON).
//  4. Command-line flags --addr and --timeout.
//
// # JSON schema
//
// Timeouts use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_addr": "http://127.0.0.1:8080",
//	  "timeout": "5s"
//	}
package config
