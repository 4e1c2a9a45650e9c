// Package log provides the logging abstraction used by efflux components.
//
// The Logger interface can be implemented by any logging library. A zerolog
// adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("sent batch", log.Int("batch", 0), log.Int("status", 200))
//
// Or, in tests:
//
//	logger := log.NewNoopLogger()
package log
