package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the application configuration from path (or config.yml when
// path is empty), applies environment overrides, and fills in defaults.
// A missing config file is not an error: everything has a safe default and
// the API key can come from the environment alone.
func Load(path string) (AppConfig, error) {
	// Load .env into the environment first (ignore if missing).
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "config.yaml"}
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
		break
	}

	// The API key is a secret; the environment wins over the file.
	if key := os.Getenv("METLINK_API_KEY"); key != "" {
		cfg.Feed.APIKey = key
	}
	if os.Getenv("METLINK_DEBUG") == "YES" {
		cfg.Debug = true
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = DefaultFeedURL
	}
	if cfg.Feed.Format == "" {
		cfg.Feed.Format = "json"
	}
	if cfg.Classification.Policy == "" {
		cfg.Classification.Policy = "route-id"
	}
}

// Buses reports the bus visibility switch, defaulting to on.
func (c ClassificationConfig) Buses() bool { return c.ShowBuses == nil || *c.ShowBuses }

// Trains reports the train visibility switch, defaulting to on.
func (c ClassificationConfig) Trains() bool { return c.ShowTrains == nil || *c.ShowTrains }

// Ferries reports the ferry visibility switch, defaulting to on.
func (c ClassificationConfig) Ferries() bool { return c.ShowFerries == nil || *c.ShowFerries }
