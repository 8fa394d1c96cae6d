package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the storefront API
//	-d string   path to the local SQLite store
//	-t int      request timeout in seconds
//	-l string   log level
//	-i int      online check interval in seconds
//
// Other arguments on the command line are ignored.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	fs.StringVar(&cfg.APIHost, "a", cfg.APIHost, "base URL of the storefront API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := flagx.Parse(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
