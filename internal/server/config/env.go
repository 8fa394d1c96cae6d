package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays Config with the variables named in its env tags. Unset
// variables keep the current value.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
