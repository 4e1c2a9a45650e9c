package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"EFFLUX_FILE":           "/env/app.log",
				"EFFLUX_HOST":           "env.splunk.com",
				"EFFLUX_TOKEN":          "env-token",
				"EFFLUX_SOURCE":         "env-source",
				"EFFLUX_SOURCETYPE":     "env-type",
				"EFFLUX_SERVICE_URL":    "http://localhost:8088",
				"EFFLUX_MAX_BATCH_SIZE": "100KiB",
				"EFFLUX_HTTP_TIMEOUT":   "1m",
				"EFFLUX_LOG_LEVEL":      "warn",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				File:         "/env/app.log",
				Host:         "env.splunk.com",
				Token:        "env-token",
				Source:       "env-source",
				SourceType:   "env-type",
				ServiceURL:   "http://localhost:8088",
				MaxBatchSize: "100KiB",
				HTTPTimeout:  time.Minute,
				LogLevel:     "warn",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"EFFLUX_HOST":  "env.splunk.com",
				"EFFLUX_TOKEN": "env-token",
			},
			changed: map[string]bool{"host": true},
			initial: Config{Host: "flag.splunk.com"},
			expected: Config{
				Host:  "flag.splunk.com",
				Token: "env-token",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"EFFLUX_HTTP_TIMEOUT": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		Host:       "file.splunk.com",
		Source:     "file-source",
		SourceType: "file-type",
	}

	t.Setenv("EFFLUX_HOST", "env.splunk.com")
	t.Setenv("EFFLUX_SOURCE", "env-source")

	changed := map[string]bool{
		"host": true, // CLI flag was set for host
	}

	cfg := Config{
		Host: "cli.splunk.com",
	}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Host != "cli.splunk.com" {
		t.Errorf("Host = %v, want cli.splunk.com (CLI should win)", cfg.Host)
	}
	if cfg.Source != "env-source" {
		t.Errorf("Source = %v, want env-source (env should override file)", cfg.Source)
	}
	if cfg.SourceType != "file-type" {
		t.Errorf("SourceType = %v, want file-type (file should set)", cfg.SourceType)
	}
}
