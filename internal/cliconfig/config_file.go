package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	File         string `toml:"file"`
	Host         string `toml:"host"`
	Token        string `toml:"token"`
	Source       string `toml:"source"`
	SourceType   string `toml:"sourcetype"`
	ServiceURL   string `toml:"service_url"`
	MaxBatchSize string `toml:"max_batch_size"`
	HTTPTimeout  string `toml:"http_timeout"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.efflux/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".efflux", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", fc.File, &cfg.File)
	s.setString("host", fc.Host, &cfg.Host)
	s.setString("token", fc.Token, &cfg.Token)
	s.setString("source", fc.Source, &cfg.Source)
	s.setString("sourcetype", fc.SourceType, &cfg.SourceType)
	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("max-batch-size", fc.MaxBatchSize, &cfg.MaxBatchSize)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout)
}

// FileExists checks if a regular file exists at the given path.
func FileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
