package efflux

import (
	"fmt"
	"time"

	"github.com/bft-labs/efflux/internal/domain"
)

// DefaultMaxBatchBytes keeps request bodies under the collector's default
// 1MB content limit.
const DefaultMaxBatchBytes = 950 * 1024

// Config holds the settings of a single shipping run.
type Config struct {
	// File is the path of the input file.
	File string

	// Host is the collector host name, embedded verbatim into the URL.
	Host string

	// ServiceURL, when set, replaces https://<Host> as the base URL.
	ServiceURL string

	// Token is sent as "Authorization: Splunk <Token>".
	Token string

	// Source and SourceType are passed as query parameters.
	Source     string
	SourceType string

	// MaxBatchBytes bounds the summed line length of a batch.
	MaxBatchBytes int

	// HTTPTimeout is applied to the default HTTP client. Zero means none.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
// File, Host and Token must be set before use.
func DefaultConfig() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills unset optional fields.
func (c *Config) SetDefaults() {
	if c.Source == "" {
		c.Source = domain.DefaultSource
	}
	if c.SourceType == "" {
		c.SourceType = domain.DefaultSourceType
	}
	if c.MaxBatchBytes == 0 {
		c.MaxBatchBytes = DefaultMaxBatchBytes
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	switch {
	case c.File == "":
		return fmt.Errorf("%w: file is required", ErrInvalidConfig)
	case c.Host == "" && c.ServiceURL == "":
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	case c.Token == "":
		return fmt.Errorf("%w: token is required", ErrInvalidConfig)
	case c.MaxBatchBytes <= 0:
		return fmt.Errorf("%w: max batch bytes must be positive", ErrInvalidConfig)
	case c.HTTPTimeout < 0:
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) endpoint() domain.Endpoint {
	return domain.ResolveEndpoint(c.Host, c.ServiceURL, c.Source, c.SourceType, c.Token)
}

// Errors returned by Run and New, checkable with errors.Is.
var (
	ErrFileAccess        = domain.ErrFileAccess
	ErrLineDecode        = domain.ErrLineDecode
	ErrTransport         = domain.ErrTransport
	ErrInvalidConfig     = domain.ErrInvalidConfig
	ErrInvalidTransition = domain.ErrInvalidTransition
)
