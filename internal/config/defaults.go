package config

import (
	"strings"
	"time"
)

// ApplyDefaults fills any unspecified configuration fields with sensible
// defaults, after loading from file/env and before validation.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyServerDefaults(&cfg.Server)
	applyEngineDefaults(&cfg.Engine)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyServerDefaults(cfg *ServerConfig) {
	if cfg.Port == 0 {
		cfg.Port = 9090
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
}

func applyEngineDefaults(cfg *EngineConfig) {
	if cfg.CommandBuffer == 0 {
		cfg.CommandBuffer = 64
	}
	if cfg.EventBuffer == 0 {
		cfg.EventBuffer = 256
	}
	if cfg.SessionBuffer == 0 {
		cfg.SessionBuffer = 64
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = 100
	}
}
