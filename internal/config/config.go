// Package config loads CLI defaults from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-launchview/internal/logging"
	"github.com/litescript/ls-launchview/internal/visibility"
)

// Output modes.
const (
	OutputTUI     = "tui"
	OutputSummary = "summary"
	OutputJSON    = "json"
	OutputNow     = "now"
)

type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Notify  NotifyConfig  `yaml:"notify"`
	Logging LoggingConfig `yaml:"logging"`
}

type InputConfig struct {
	Path    string        `yaml:"path"`    // listing file, "-" for stdin
	Refresh time.Duration `yaml:"refresh"` // re-read interval in watch/TUI mode
}

type OutputConfig struct {
	Mode          string `yaml:"mode"`
	MinLikelihood string `yaml:"min_likelihood"`
}

type NotifyConfig struct {
	Enabled       bool          `yaml:"enabled"`
	MinLikelihood string        `yaml:"min_likelihood"`
	LeadTime      time.Duration `yaml:"lead_time"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load builds a config from defaults, then the YAML file at configPath (if
// any), then environment overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	config := &Config{}
	config.setDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := config.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

func (c *Config) setDefaults() {
	c.Input.Path = "-"
	c.Input.Refresh = 5 * time.Minute

	c.Output.Mode = OutputTUI
	c.Output.MinLikelihood = "none"

	c.Notify.Enabled = false
	c.Notify.MinLikelihood = "medium"
	c.Notify.LeadTime = 30 * time.Minute

	c.Logging.Level = "info"
}

func (c *Config) loadFromEnv() error {
	if path := os.Getenv("LAUNCHVIEW_INPUT"); path != "" {
		c.Input.Path = path
	}

	if mode := os.Getenv("LAUNCHVIEW_OUTPUT"); mode != "" {
		c.Output.Mode = mode
	}

	if min := os.Getenv("LAUNCHVIEW_MIN_LIKELIHOOD"); min != "" {
		c.Output.MinLikelihood = min
	}

	if lead := os.Getenv("LAUNCHVIEW_NOTIFY_LEAD"); lead != "" {
		d, err := time.ParseDuration(lead)
		if err != nil {
			return fmt.Errorf("LAUNCHVIEW_NOTIFY_LEAD: %w", err)
		}
		c.Notify.LeadTime = d
	}

	if level := os.Getenv("LAUNCHVIEW_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input path cannot be empty")
	}

	if c.Input.Refresh < time.Second {
		return fmt.Errorf("refresh interval must be at least 1s")
	}

	switch c.Output.Mode {
	case OutputTUI, OutputSummary, OutputJSON, OutputNow:
	default:
		return fmt.Errorf("output mode must be one of tui, summary, json, now")
	}

	if _, err := visibility.ParseLikelihood(c.Output.MinLikelihood); err != nil {
		return fmt.Errorf("output min_likelihood: %w", err)
	}

	if _, err := visibility.ParseLikelihood(c.Notify.MinLikelihood); err != nil {
		return fmt.Errorf("notify min_likelihood: %w", err)
	}

	if c.Notify.LeadTime < 0 {
		return fmt.Errorf("notify lead time cannot be negative")
	}

	if _, ok := logging.LookupLevel(c.Logging.Level); !ok {
		return fmt.Errorf("log level must be debug, info, warn or error")
	}

	return nil
}

// MinLikelihood returns the parsed output filter.
func (c *Config) MinLikelihood() visibility.Likelihood {
	l, _ := visibility.ParseLikelihood(c.Output.MinLikelihood)
	return l
}

// NotifyMinLikelihood returns the parsed alert threshold.
func (c *Config) NotifyMinLikelihood() visibility.Likelihood {
	l, _ := visibility.ParseLikelihood(c.Notify.MinLikelihood)
	return l
}
