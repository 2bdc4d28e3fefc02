package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADBOARD_ADDR"); ok && v != "" {
		cfg.ServerAddr = v
	}
	if v, ok := os.LookupEnv("ADBOARD_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
}
