// Package config loads the ELIK configuration from a TOML file, with
// environment variables (optionally from a .env file) selecting its path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvConfigPath names the environment variable holding the TOML path.
const EnvConfigPath = "ELIK_CONFIG"

// DefaultPath is used when EnvConfigPath is not set.
const DefaultPath = "elik.toml"

type Config struct {
	DocumentTitle string   `toml:"document_title"`
	FilePrefix    string   `toml:"file_prefix"`
	Defaults      Defaults `toml:"defaults"`
}

// Defaults are the rates of the seeded default preset.
type Defaults struct {
	PresetName    string  `toml:"preset_name"`
	HourlyRate    float64 `toml:"hourly_rate"`
	RatePerLength float64 `toml:"rate_per_length"`
	TransportCost float64 `toml:"transport_cost"`
	MealCost      float64 `toml:"meal_cost"`
}

func DefaultConfig() *Config {
	return &Config{
		DocumentTitle: "ELIK - Kalkulace elektroinstalace",
		FilePrefix:    "ELIK",
		Defaults: Defaults{
			PresetName:    "Standardní sazby",
			HourlyRate:    800,
			RatePerLength: 150,
			TransportCost: 500,
			MealCost:      300,
		},
	}
}

// Path returns the configuration file path after loading .env, if present.
func Path() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "config: ignoring unreadable .env: %v\n", err)
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the TOML file at path on top of DefaultConfig. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.FilePrefix == "" {
		cfg.FilePrefix = DefaultConfig().FilePrefix
	}
	return cfg, nil
}
