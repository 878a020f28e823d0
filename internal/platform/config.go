package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvDataFile = "FITBOOK_DATA_FILE"
	EnvReadOnly = "FITBOOK_READ_ONLY"
	EnvLogLevel = "FITBOOK_LOG_LEVEL"
	EnvWatch    = "FITBOOK_WATCH"
)

// Config is the user preferences file. Unset fields keep their defaults.
type Config struct {
	DataFile    string `yaml:"data_file" toml:"data_file"`
	Format      string `yaml:"format" toml:"format"`
	ReadOnly    *bool  `yaml:"read_only" toml:"read_only"`
	Watch       *bool  `yaml:"watch" toml:"watch"`
	Versioned   *bool  `yaml:"versioned" toml:"versioned"`
	SampleData  *bool  `yaml:"sample_data" toml:"sample_data"`
	LogLevel    string `yaml:"log_level" toml:"log_level"`
	HistoryFile string `yaml:"history_file" toml:"history_file"`

	// Source is the file the config was read from, if any.
	Source string `yaml:"-" toml:"-"`
}

// LoadConfigFile reads a YAML or TOML config file, chosen by extension.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{Source: path}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file %s", path)
	}
	return cfg, nil
}

// LoadConfig finds and reads the config file in dirs (see ConfigDirs),
// then applies the environment. envFiles are loaded with godotenv first;
// missing ones are ignored and variables already set are never replaced.
func LoadConfig(dirs []string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	if path := FindConfigFile(dirs...); path != "" {
		loaded, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces fields with the FITBOOK_* variables that are
// set.
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	for name, field := range map[string]**bool{EnvReadOnly: &c.ReadOnly, EnvWatch: &c.Watch} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*field = &b
	}
	return nil
}

// Options converts the config into functional options. Options passed
// after these take precedence.
func (c *Config) Options() []Option {
	var opts []Option
	if c.DataFile != "" {
		opts = append(opts, WithDataFile(c.DataFile))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	if c.ReadOnly != nil {
		opts = append(opts, WithReadOnly(*c.ReadOnly))
	}
	if c.Watch != nil {
		opts = append(opts, WithWatch(*c.Watch))
	}
	if c.Versioned != nil {
		opts = append(opts, WithVersioning(*c.Versioned))
	}
	if c.SampleData != nil {
		opts = append(opts, WithSampleData(*c.SampleData))
	}
	return opts
}

// ParseLogLevel maps debug, info, warn and error to slog levels. An empty
// string is info.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
