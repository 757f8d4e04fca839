package global

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const AppName = "pokemon-term"

// DefaultShinyRate is the chance for a random Pokemon to be shiny when the config does not set one.
const DefaultShinyRate = 1.0 / 128

type Config struct {
	// AssetsDir holds pokemon.json and the colorscripts directory.
	AssetsDir string
	// Language is a BCP 47 tag used to pick localized names, e.g. "en" or "ja".
	Language  string
	ShinyRate float64
	Debug     bool
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, AppName)
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func SaveConfig(path string, config Config) error {
	jsonBytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return errors.Wrapf(err, "writing config to %s", path)
	}

	return nil
}

// loadConfig reads the config at path. A missing or empty file is replaced with the defaults.
func loadConfig(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return populateConfig(Config{}), errors.Wrapf(err, "reading config %s", path)
	}

	if len(contents) == 0 {
		config := populateConfig(Config{})
		return config, SaveConfig(path, config)
	}

	config := Config{}
	if err := json.Unmarshal(contents, &config); err != nil {
		return populateConfig(Config{}), errors.WithHintf(
			errors.Wrapf(err, "parsing config %s", path),
			"fix or delete %s to go back to the defaults", path,
		)
	}

	return populateConfig(config), nil
}

func populateConfig(config Config) Config {
	if config.AssetsDir == "" {
		config.AssetsDir = defaultAssetsDir()
	}
	if config.Language == "" {
		config.Language = "en"
	}

	switch {
	case config.ShinyRate <= 0:
		config.ShinyRate = DefaultShinyRate
	case config.ShinyRate > 1:
		config.ShinyRate = 1
	}

	return config
}

// defaultAssetsDir is the assets directory next to the binary.
func defaultAssetsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "assets"
	}

	return filepath.Join(filepath.Dir(exe), "assets")
}
