package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from .env files into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// parseEnv overlays Config with environment variables:
//
//	HTTP_ADDR, DATABASE_DSN, LOG_LEVEL, PASSWORD_HASH_COST,
//	SHUTDOWN_TIMEOUT, REQUEST_TIMEOUT (Go durations)
//
// When POSTGRES_HOST is set the DSN is assembled from POSTGRES_USER,
// POSTGRES_PASSWORD, POSTGRES_HOST, POSTGRES_PORT and POSTGRES_DB instead;
// an explicit DATABASE_DSN still takes precedence.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("HTTP_ADDR"); ok {
		cfg.EndpointAddrHTTP = v
	}

	if dsn := postgresDSNFromEnv(); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("PASSWORD_HASH_COST"); ok {
		if cost, err := strconv.Atoi(v); err == nil {
			cfg.PasswordHashCost = cost
		}
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}

func postgresDSNFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + os.Getenv("POSTGRES_DB"),
		RawQuery: "sslmode=disable",
	}
	if user := os.Getenv("POSTGRES_USER"); user != "" {
		u.User = url.UserPassword(user, os.Getenv("POSTGRES_PASSWORD"))
	}

	return u.String()
}
