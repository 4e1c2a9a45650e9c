package cliconfig

import (
	"fmt"
	"time"

	units "github.com/docker/go-units"

	"github.com/bft-labs/efflux/internal/domain"
	"github.com/bft-labs/efflux/pkg/log"
)

// Defaults for optional settings.
const (
	DefaultSource       = domain.DefaultSource
	DefaultSourceType   = domain.DefaultSourceType
	DefaultMaxBatchSize = "950KiB"
	DefaultLogLevel     = "info"
)

// Config holds CLI configuration for efflux.
type Config struct {
	File string

	Host       string
	Token      string
	Source     string
	SourceType string

	// ServiceURL replaces https://<host> as the collector base URL.
	ServiceURL string

	// MaxBatchSize is a human-readable size such as "950KiB" or "1MB".
	// Validate parses it into MaxBatchBytes.
	MaxBatchSize  string
	MaxBatchBytes int

	// HTTPTimeout of zero means no client timeout.
	HTTPTimeout time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Source:       DefaultSource,
		SourceType:   DefaultSourceType,
		MaxBatchSize: DefaultMaxBatchSize,
		LogLevel:     DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and sets derived values.
func (c *Config) Validate() error {
	if c.File == "" {
		return invalid("file is required")
	}
	if c.Host == "" && c.ServiceURL == "" {
		return invalid("host is required")
	}
	if c.Token == "" {
		return invalid("token is required")
	}
	if c.Source == "" {
		return invalid("source must not be empty")
	}
	if c.SourceType == "" {
		return invalid("sourcetype must not be empty")
	}

	if c.MaxBatchSize == "" {
		c.MaxBatchSize = DefaultMaxBatchSize
	}
	n, err := units.RAMInBytes(c.MaxBatchSize)
	if err != nil {
		return invalid(fmt.Sprintf("max batch size %q: %v", c.MaxBatchSize, err))
	}
	if n <= 0 {
		return invalid("max batch size must be positive")
	}
	c.MaxBatchBytes = int(n)

	if c.HTTPTimeout < 0 {
		return invalid("timeout must not be negative")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return invalid(fmt.Sprintf("log level %q", c.LogLevel))
	}

	return nil
}

// Endpoint resolves the collector endpoint from the configuration.
func (c Config) Endpoint() domain.Endpoint {
	return domain.ResolveEndpoint(c.Host, c.ServiceURL, c.Source, c.SourceType, c.Token)
}

// Masked returns a copy safe to log.
func (c Config) Masked() Config {
	if len(c.Token) > 0 {
		c.Token = "*****"
	}
	return c
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, msg)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
