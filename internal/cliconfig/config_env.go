package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (EFFLUX_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("EFFLUX_FILE"), &cfg.File)
	s.setString("host", os.Getenv("EFFLUX_HOST"), &cfg.Host)
	s.setString("token", os.Getenv("EFFLUX_TOKEN"), &cfg.Token)
	s.setString("source", os.Getenv("EFFLUX_SOURCE"), &cfg.Source)
	s.setString("sourcetype", os.Getenv("EFFLUX_SOURCETYPE"), &cfg.SourceType)
	s.setString("service-url", os.Getenv("EFFLUX_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("max-batch-size", os.Getenv("EFFLUX_MAX_BATCH_SIZE"), &cfg.MaxBatchSize)
	s.setString("log-level", os.Getenv("EFFLUX_LOG_LEVEL"), &cfg.LogLevel)

	return s.setDuration("timeout", os.Getenv("EFFLUX_HTTP_TIMEOUT"), &cfg.HTTPTimeout)
}
