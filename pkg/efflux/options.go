package efflux

import (
	"io"
	"net/http"
	"os"

	"github.com/bft-labs/efflux/internal/ports"
	"github.com/bft-labs/efflux/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// Option configures optional behavior of a Shipper.
type Option func(*options)

// options holds the optional configuration for a Shipper.
type options struct {
	httpClient   ports.HTTPClient
	logger       ports.Logger
	output       io.Writer
	eventHandler EventHandler
	userAgent    string
}

// defaultOptions returns options with sensible defaults.
func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
		output:     os.Stdout,
		userAgent:  "efflux",
	}
}

// WithHTTPClient sets a custom HTTP client for collector requests.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where per-batch report lines are printed.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithEventHandler sets a handler for run events.
// Events are called synchronously from the goroutine calling Run.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}
