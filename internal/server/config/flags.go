package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// newFlagSet binds the server flags directly to cfg; current values become
// the defaults. Durations take Go syntax ("15m", "720h").
func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("storefront-server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN, empty for in-memory storage")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "JWT signing secret")
	fs.DurationVar(&cfg.AccessTokenValidityDuration, "t", cfg.AccessTokenValidityDuration, "access token lifetime")
	fs.DurationVar(&cfg.RefreshTokenValidityDuration, "r", cfg.RefreshTokenValidityDuration, "refresh token lifetime")
	fs.DurationVar(&cfg.ShutdownTimeout, "w", cfg.ShutdownTimeout, "graceful shutdown timeout")

	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket with package images")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 endpoint, empty disables presigning")

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	return fs
}

// parseFlags applies the server's own flags from os.Args and panics on a
// malformed value.
func parseFlags(cfg *Config) {
	if err := flagx.Parse(newFlagSet(cfg), os.Args[1:]); err != nil {
		panic(err)
	}
}
