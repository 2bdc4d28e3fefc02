package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/adboard/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-l string   log level (debug, info, warn, error)
//	-t int      shutdown timeout, seconds
//	-r int      request timeout, seconds
//
// Arguments are filtered with flagx.FilterArgs first so -c/-config and
// unknown flags do not break parsing. Invalid values panic.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	requestTimeout := fs.Int("r", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only explicit flags, so sub-second values from env or JSON survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		case "r":
			config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
