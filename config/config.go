// Package config loads the settings of the error handling demo server from
// the environment or a configuration file.
package config

import (
	"io"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" env:"ERRDEMO_ADDR" env-default:":8080" env-description:"HTTP listen address"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"ERRDEMO_LOG_LEVEL" env-default:"info" env-description:"Minimum log level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" env:"ERRDEMO_LOG_FORMAT" env-default:"text" env-description:"Log output format"`

	// MappingFile is an optional YAML table of error code to HTTP status.
	MappingFile string `yaml:"mapping_file" env:"ERRDEMO_MAPPING_FILE" env-description:"Error code mapping table"`

	// SchemaFile is an optional CUE schema for request payloads.
	SchemaFile string `yaml:"schema_file" env:"ERRDEMO_SCHEMA_FILE" env-description:"CUE schema for request payloads"`

	// OmitStack drops stacks from logged diagnostic records.
	OmitStack bool `yaml:"omit_stack" env:"ERRDEMO_OMIT_STACK" env-default:"false" env-description:"Drop stacks from error logs"`
}

// Load reads the configuration from the environment.
// Returns CodeInvalidConfig if a variable cannot be parsed or a value is invalid.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read configuration from environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads the configuration from a YAML, JSON, TOML or .env file.
// Environment variables override values from the file.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, errors.WrapWithMeta(err, errors.CodeInvalidConfig, "failed to read configuration file", map[string]interface{}{
			"path": path,
		})
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.WrapWithMeta(err, errors.CodeInvalidConfig, "invalid log level", map[string]interface{}{
			"log_level": c.LogLevel,
		})
	}

	switch logging.Format(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return errors.NewWithMeta(errors.CodeInvalidConfig, "invalid log format", map[string]interface{}{
			"log_format": c.LogFormat,
		})
	}

	return nil
}

// Handler builds the slog handler described by the log settings.
func (c Config) Handler(w io.Writer) slog.Handler {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.NewHandler(logging.Format(c.LogFormat), level, w)
}

// Usage writes a description of every environment variable to w.
func Usage(w io.Writer) error {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to describe configuration")
	}
	_, err = io.WriteString(w, desc+"\n")
	return err
}
