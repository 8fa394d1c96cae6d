// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (API_HOST, STOREFRONT_DB, REQUEST_TIMEOUT,
//     REFRESH_TIMEOUT, BOOTSTRAP_ON_FOCUS, STORE_PASSPHRASE, LOG_LEVEL,
//     ONLINE_CHECK_INTERVAL).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the storefront API
//	-d string   path to the local SQLite store
//	-t int      request timeout (seconds)
//	-l string   log level
//	-i int      online check interval (seconds)
//
// # JSON schema
//
//	{
//	  "api_host": "https://shop.example.com",
//	  "db_path": "/home/ann/.storefront/store.db",
//	  "request_timeout": "15s",
//	  "refresh_timeout": "10s",
//	  "bootstrap_on_focus": true,
//	  "log_level": "info",
//	  "online_check_interval": "30s"
//	}
package config
