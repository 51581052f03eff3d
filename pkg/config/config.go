/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/disgo/pkg/codec"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the disgo tool configuration
type Config struct {
	ByteOrder   codec.ByteOrder `yaml:"byte_order" toml:"byte_order"`
	SkipCorrupt bool            `yaml:"skip_corrupt" toml:"skip_corrupt"`
	CapturePath string          `yaml:"capture_path" toml:"capture_path"`
	ArchiveDir  string          `yaml:"archive_dir" toml:"archive_dir"`
	Bind        string          `yaml:"bind" toml:"bind"`
	Port        int             `yaml:"port" toml:"port"`
	Logging     Logging         `yaml:"logging" toml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level      string `yaml:"level" toml:"level"`
	Console    bool   `yaml:"console" toml:"console"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ByteOrder:   codec.BigEndian,
		CapturePath: "./data/capture.dis",
		ArchiveDir:  "./data/archive",
		Port:        8080,
		Bind:        "127.0.0.1",
		Logging: Logging{
			Level:      "info",
			Console:    true,
			MaxSizeMB:  25,
			MaxBackups: 5,
			MaxAgeDays: 7,
		},
	}
}

// LoadConfig loads configuration from the specified path. Files ending in
// .toml are parsed as TOML, everything else as YAML. Keys missing from the
// file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Newf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if isTOML(configPath) {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	var data []byte
	var err error
	if isTOML(configPath) {
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(config)
		data = []byte(sb.String())
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks value ranges and that the log level parses.
func (c *Config) Validate() error {
	if c.ByteOrder != codec.BigEndian && c.ByteOrder != codec.LittleEndian {
		return errors.Wrapf(ErrInvalidConfig, "byte_order %d", uint8(c.ByteOrder))
	}
	if c.Port < 1 || c.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "port %d out of range", c.Port)
	}
	if c.CapturePath == "" {
		return errors.Wrap(ErrInvalidConfig, "capture_path is empty")
	}
	if c.ArchiveDir == "" {
		return errors.Wrap(ErrInvalidConfig, "archive_dir is empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "logging.level %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return errors.Wrap(ErrInvalidConfig, "logging rotation limits must not be negative")
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./disgo.yaml"
	}

	// For Linux/macOS, use ~/.config/disgo/config.yaml
	configDir := filepath.Join(homeDir, ".config", "disgo")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
