/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config loads client configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory
const DefaultFilename = "stackctl.yaml"

// Config holds the settings needed to reach the orchestration service
type Config struct {
	// Endpoint is the base URL of the orchestration service API
	Endpoint string `yaml:"endpoint"`

	// Token is the pre-issued auth token forwarded with every request
	Token string `yaml:"token"`

	// TimeoutSeconds bounds each HTTP round trip; zero uses the client default
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Load reads configuration from the given file, then applies environment
// overrides (STACKCTL_ENDPOINT, STACKCTL_TOKEN). A missing file is not an
// error: the endpoint may arrive entirely via environment or flags.
func Load(filename string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filename)
	switch {
	case os.IsNotExist(err):
		// fall through to environment overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	if endpoint := os.Getenv("STACKCTL_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if token := os.Getenv("STACKCTL_TOKEN"); token != "" {
		cfg.Token = token
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("no orchestration service endpoint configured: set endpoint in %s, STACKCTL_ENDPOINT, or --endpoint", DefaultFilename)
	}
	return nil
}

// Timeout returns the configured request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
