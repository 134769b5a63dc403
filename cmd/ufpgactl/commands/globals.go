// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/config"
	"github.com/ufpga/ufpga/lib/sysfs"
	"github.com/ufpga/ufpga/lib/ufpga"
)

// globalFlags are accepted by every command. One instance is shared by
// the whole tree; each command's params hold a pointer to it.
type globalFlags struct {
	ConfigPath string
	SysRoot    string
	DevRoot    string
	Class      string
	LogLevel   string
}

// AddFlags implements cli.FlagBinder.
func (g *globalFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&g.ConfigPath, "config", "", "configuration file (.yaml, .json or .jsonc)")
	flagSet.StringVar(&g.SysRoot, "sys-root", "", "sysfs mount point (default /sys)")
	flagSet.StringVar(&g.DevRoot, "dev-root", "", "device node directory (default /dev)")
	flagSet.StringVar(&g.Class, "class", "", "sysfs device class (default ufpga)")
	flagSet.StringVar(&g.LogLevel, "log-level", "", "log level: debug, info, warn, error (default info)")
}

// load builds the effective configuration: defaults, then the --config
// file, then individual flags.
func (g *globalFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if g.ConfigPath != "" {
		loaded, err := config.Load(g.ConfigPath)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		cfg = loaded
	}
	if g.SysRoot != "" {
		cfg.SysRoot = g.SysRoot
	}
	if g.DevRoot != "" {
		cfg.DevRoot = g.DevRoot
	}
	if g.Class != "" {
		cfg.Class = g.Class
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// logger returns the command logger at the configured level. An
// invalid configuration falls back to info; the command reports the
// configuration error itself.
func (g *globalFlags) logger(env Environment) *slog.Logger {
	level := slog.LevelInfo
	if cfg, err := g.load(); err == nil {
		if parsed, err := cfg.Level(); err == nil {
			level = parsed
		}
	}
	return env.NewLogger(level)
}

func newCatalog(env Environment, cfg *config.Config, logger *slog.Logger) *sysfs.Catalog {
	return sysfs.NewCatalog(sysfs.Options{
		Namespace: env.Namespace,
		SysRoot:   cfg.SysRoot,
		DevRoot:   cfg.DevRoot,
		Logger:    logger,
	})
}

// selectDevices enumerates the class and narrows the result to the
// selectors in args.
func selectDevices(env Environment, cfg *config.Config, logger *slog.Logger, args []string) ([]*ufpga.Device, error) {
	catalog := newCatalog(env, cfg, logger)
	records, err := catalog.Enumerate(cfg.Class)
	if err != nil {
		return nil, classify(err, catalog, cfg)
	}
	selected, err := sysfs.Select(records, args)
	if err != nil {
		return nil, classify(err, catalog, cfg)
	}
	devices := make([]*ufpga.Device, 0, len(selected))
	for _, record := range selected {
		devices = append(devices, ufpga.NewDevice(record, env.Namespace, logger))
	}
	return devices, nil
}

// classify maps library errors to categorized CLI errors.
func classify(err error, catalog *sysfs.Catalog, cfg *config.Config) error {
	switch {
	case errors.Is(err, sysfs.ErrClassUnavailable):
		return cli.NotFound("%w", err).WithHint(fmt.Sprintf(
			"Expected %s. Is the ufpga driver loaded? Run 'ufpgactl doctor' for details.",
			catalog.ClassPath(cfg.Class)))
	case errors.Is(err, sysfs.ErrDeviceNotFound):
		return cli.NotFound("%w", err).WithHint("Run 'ufpgactl list' to see available devices.")
	case errors.Is(err, fs.ErrPermission):
		return cli.Forbidden("%w", err)
	default:
		return cli.Internal("%w", err)
	}
}
