package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they may be written as "15s" or as nanoseconds.
// BootstrapOnFocus is a pointer so an absent key differs from false.
type JsonConfig struct {
	APIHost             string         `json:"api_host"`
	DBPath              string         `json:"db_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	RefreshTimeout      timex.Duration `json:"refresh_timeout"`
	BootstrapOnFocus    *bool          `json:"bootstrap_on_focus"`
	StorePassphrase     string         `json:"store_passphrase"`
	LogLevel            string         `json:"log_level"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag nothing is loaded. Only keys present in
// the file override the current values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIHost != "" {
		cfg.APIHost = jc.APIHost
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration > 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.BootstrapOnFocus != nil {
		cfg.BootstrapOnFocus = *jc.BootstrapOnFocus
	}
	if jc.StorePassphrase != "" {
		cfg.StorePassphrase = jc.StorePassphrase
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
