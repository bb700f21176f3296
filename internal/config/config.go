// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PlaceholderAPIKey is the value shipped in the sample config
const PlaceholderAPIKey = "your_api_key_here"

// DefaultFileNames lists the config files looked up by Find, in order
var DefaultFileNames = []string{"config.json", "config.toml", "config.yaml", "config.yml"}

// Config holds the Radarr connection settings.
// It is built once at startup and only read afterwards.
type Config struct {
	RadarrIP     string `json:"radarr_ip" toml:"radarr_ip" yaml:"radarr_ip" env:"RADARR_IP"`
	RadarrPort   int    `json:"radarr_port" toml:"radarr_port" yaml:"radarr_port" env:"RADARR_PORT"`
	RadarrAPIKey string `json:"radarr_api_key" toml:"radarr_api_key" yaml:"radarr_api_key" env:"RADARR_API_KEY"`
}

// BaseURL returns the Radarr root URL
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.RadarrIP, c.RadarrPort)
}

// Find returns the first default config file present in dir
func Find(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s found in %s", ErrConfigFileAccess, strings.Join(DefaultFileNames, ", "), dir)
}

// LoadConfig loads the configuration from a JSON, TOML or YAML file.
// A .env file next to it and the process environment override file values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigFileAccess, err)
	}

	config := &Config{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		err = json.Unmarshal(data, config)
	case ".toml":
		err = toml.Unmarshal(data, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding config file %s", path)
	}

	// .env is optional
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	if err := loadEnvOverrides(config); err != nil {
		return nil, errors.Wrap(err, "error loading environment variables")
	}

	return config, nil
}

// loadEnvOverrides checks for environment variables and overrides config values
func loadEnvOverrides(config *Config) error {
	if env := os.Getenv("RADARR_IP"); env != "" {
		config.RadarrIP = env
	}
	if env := os.Getenv("RADARR_PORT"); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("RADARR_PORT must be an integer: %q", env)
		}
		config.RadarrPort = port
	}
	if env := os.Getenv("RADARR_API_KEY"); env != "" {
		config.RadarrAPIKey = env
	}

	return nil
}

// Validate reports missing settings and the placeholder API key
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.RadarrIP) == "" {
		missing = append(missing, "radarr_ip")
	}
	if c.RadarrPort <= 0 {
		missing = append(missing, "radarr_port")
	}
	if strings.TrimSpace(c.RadarrAPIKey) == "" {
		missing = append(missing, "radarr_api_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if c.RadarrAPIKey == PlaceholderAPIKey {
		return fmt.Errorf("%w: set your Radarr API key in the config file", ErrPlaceholderAPIKey)
	}

	return nil
}
