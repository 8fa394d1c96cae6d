package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays Config with environment variables named in the env tags.
// Unset variables leave the current value alone. Panics on malformed values,
// like the other loaders.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
