// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// MinimumInterval is the shortest accepted monitor poll interval.
const MinimumInterval = 100 * time.Millisecond

// Config is the ufpgactl configuration.
type Config struct {
	// Class is the sysfs device class to enumerate.
	Class string `yaml:"class"`

	// SysRoot is the sysfs mount point.
	SysRoot string `yaml:"sys_root"`

	// DevRoot is the directory scanned for device nodes.
	DevRoot string `yaml:"dev_root"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Monitor configures the live dashboard.
	Monitor MonitorConfig `yaml:"monitor"`
}

// MonitorConfig configures the monitor command.
type MonitorConfig struct {
	// Interval is the telemetry poll period, e.g. "500ms".
	Interval time.Duration `yaml:"interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Class:    "ufpga",
		SysRoot:  "/sys",
		DevRoot:  "/dev",
		LogLevel: "info",
		Monitor: MonitorConfig{
			Interval: time.Second,
		},
	}
}

// Load reads the file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := cfg.decode(data, isJSON(path)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// decode merges data into c. JSON is a subset of YAML, so both formats
// go through the same decoder once comments are stripped.
func (c *Config) decode(data []byte, stripComments bool) error {
	if stripComments {
		data = jsonc.ToJSON(data)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.Class == "":
		errs = append(errs, errors.New("class is required"))
	case c.Class == "." || c.Class == ".." || strings.ContainsRune(c.Class, '/'):
		errs = append(errs, fmt.Errorf("class %q is not a directory name", c.Class))
	}
	if c.SysRoot == "" {
		errs = append(errs, errors.New("sys_root is required"))
	}
	if c.DevRoot == "" {
		errs = append(errs, errors.New("dev_root is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Monitor.Interval < MinimumInterval {
		errs = append(errs, fmt.Errorf("monitor.interval %s is below the minimum of %s", c.Monitor.Interval, MinimumInterval))
	}

	return errors.Join(errs...)
}
