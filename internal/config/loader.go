package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const snakeConfigFile = "snake.yaml"

// SourceEmbedded names the built-in config in Load results.
const SourceEmbedded = "embedded"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, _, err := Load(customPath)
	return cfg, err
}

// Load is LoadSnake that also reports which file the config came from.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path must exist and parse. Files found in the
// search locations are skipped when they are unreadable or invalid.
func Load(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		cfg, err := ParseFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range SearchPaths() {
		if cfg, err := ParseFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// SearchPaths lists the optional config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".snake", "configs", snakeConfigFile))
	}
	return append(paths, filepath.Join("configs", snakeConfigFile))
}

// ParseFile reads and parses a config file.
func ParseFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the default config and validates the result.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
