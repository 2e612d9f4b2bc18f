package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is shared; building a validator is expensive.
var validate = validator.New()

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath  string   // .hcl file or directory; empty runs every lesson
	Selectors []string // "topic" or "topic/lesson"

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
	Format    string `validate:"oneof=plain pretty json"`

	Workers int           `validate:"min=1,max=64"`
	Timeout time.Duration `validate:"gt=0"`
	Verify  bool
	Listen  string `validate:"hostname_port"`
}

// DefaultConfig returns the configuration used when neither a settings file
// nor a flag says otherwise.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Format:    "plain",
		Workers:   4,
		Timeout:   5 * time.Second,
		Listen:    "127.0.0.1:8080",
	}
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ApplySettings copies every value the settings file sets onto c.
func (c *Config) ApplySettings(s *Settings) error {
	if s == nil {
		return nil
	}
	if s.Plan != "" {
		c.PlanPath = s.Plan
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
	if s.LogFormat != "" {
		c.LogFormat = s.LogFormat
	}
	if s.Format != "" {
		c.Format = s.Format
	}
	if s.Workers != 0 {
		c.Workers = s.Workers
	}
	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in settings: %w", s.Timeout, err)
		}
		c.Timeout = d
	}
	if s.Verify != nil {
		c.Verify = *s.Verify
	}
	if s.Listen != "" {
		c.Listen = s.Listen
	}
	return nil
}
