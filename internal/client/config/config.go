package config

import (
	"time"
)

// Config holds runtime settings for the storefront terminal client.
//
// Fields:
//   - APIHost: base URL of the storefront API.
//   - DBPath: SQLite file holding credentials and search history.
//   - RequestTimeout: upper bound for one HTTP exchange.
//   - RefreshTimeout: upper bound for one token refresh exchange.
//   - BootstrapOnFocus: re-run the session bootstrap before the home screen.
//   - StorePassphrase: when set, stored values are encrypted at rest.
//   - LogLevel: debug, info, warn or error.
//   - OnlineCheckInterval: how often the client checks API reachability.
type Config struct {
	APIHost             string        `env:"API_HOST"`
	DBPath              string        `env:"STOREFRONT_DB"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	RefreshTimeout      time.Duration `env:"REFRESH_TIMEOUT"`
	BootstrapOnFocus    bool          `env:"BOOTSTRAP_ON_FOCUS"`
	StorePassphrase     string        `env:"STORE_PASSPHRASE"`
	LogLevel            string        `env:"LOG_LEVEL"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIHost = "http://127.0.0.1:8080"
	c.DBPath = "storefront.db"
	c.RequestTimeout = 15 * time.Second
	c.RefreshTimeout = 10 * time.Second
	c.BootstrapOnFocus = true
	c.StorePassphrase = ""
	c.LogLevel = "warn"
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
