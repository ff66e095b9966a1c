// Package config loads filecore's configuration from a YAML file, with
// FILECORE_* environment overrides, falling back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/marmos91/filecore/internal/bytesize"
)

// Config is filecore's top-level configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (FILECORE_*) (highest priority)
//  2. Configuration file (YAML)
//  3. Default values (lowest priority)
//
// No CLI flag overrides an individual setting; --config only selects the
// file. Environment variables apply only to keys the configuration file
// sets, and are not read at all when no configuration file is found.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Server controls the HTTP debug/metrics surface.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Engine controls the actor channel capacities and history limit that
	// pkg/engine.Config mirrors directly.
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`

	// Filesystem configures the local-disk FsProvider.
	Filesystem FilesystemConfig `mapstructure:"filesystem" yaml:"filesystem"`

	// Registry configures NodeId<->path persistence.
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive).
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format: text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written: stdout, stderr, or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// ServerConfig controls the HTTP debug/metrics server.
type ServerConfig struct {
	// Enabled controls whether the HTTP surface is started at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port for /healthz, /metrics, and /debug/sessions.
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	// ShutdownTimeout bounds how long graceful shutdown waits for
	// in-flight requests to finish.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`
}

// EngineConfig mirrors pkg/engine.Config so it can be populated straight
// from file/env without the caller re-deriving defaults.
type EngineConfig struct {
	// CommandBuffer is each actor's inbound command channel capacity.
	CommandBuffer int `mapstructure:"command_buffer" validate:"omitempty,gt=0" yaml:"command_buffer"`

	// EventBuffer is the shared event bus channel capacity.
	EventBuffer int `mapstructure:"event_buffer" validate:"omitempty,gt=0" yaml:"event_buffer"`

	// SessionBuffer is each session's fan-out event channel capacity.
	SessionBuffer int `mapstructure:"session_buffer" validate:"omitempty,gt=0" yaml:"session_buffer"`

	// HistoryLimit caps how many entries a session's navigation history
	// retains before evicting the oldest.
	HistoryLimit int `mapstructure:"history_limit" validate:"omitempty,gt=0" yaml:"history_limit"`
}

// FilesystemConfig configures the local-disk FsProvider.
type FilesystemConfig struct {
	// Root is the directory the provider treats as its scheme root.
	Root string `mapstructure:"root" validate:"required" yaml:"root"`

	// Watch enables an fsnotify watcher on Root that invalidates a
	// session's view of a directory as soon as it changes on disk.
	Watch bool `mapstructure:"watch" yaml:"watch"`
}

// RegistryConfig configures NodeId<->path persistence.
type RegistryConfig struct {
	// Persistent selects a BadgerDB-backed registry (registry.OpenPersistent).
	// The setting is validated and saved, but the serve command does not
	// read it: the engine always builds an in-memory registry, and NodeIds
	// are recomputed fresh on every run.
	Persistent bool `mapstructure:"persistent" yaml:"persistent"`

	// Path is the BadgerDB directory, required when Persistent is true.
	Path string `mapstructure:"path" validate:"required_if=Persistent true" yaml:"path,omitempty"`

	// MaxEntriesCache accepts human-readable sizes via bytesize. No
	// component reads it; no cache sits in front of the registry.
	MaxEntriesCache bytesize.ByteSize `mapstructure:"max_entries_cache" yaml:"max_entries_cache,omitempty"`
}

// Load loads configuration from file, environment, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	found, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if found {
		if err := v.Unmarshal(cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in YAML form.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate runs go-playground/validator's struct-tag checks over cfg.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("FILECORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// configDecodeHooks combines the ByteSize and time.Duration decode hooks so
// config files can use human-readable sizes ("1Gi") and durations ("30s").
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		byteSizeDecodeHook(),
		durationDecodeHook(),
	)
}

func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(bytesize.ByteSize(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return bytesize.ParseByteSize(v)
		case int:
			return bytesize.ByteSize(v), nil
		case int64:
			return bytesize.ByteSize(v), nil
		case uint64:
			return bytesize.ByteSize(v), nil
		case float64:
			return bytesize.ByteSize(v), nil
		default:
			return data, nil
		}
	}
}

func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

func getConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "filecore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "filecore")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
