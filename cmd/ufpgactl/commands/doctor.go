// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/cmd/ufpgactl/cli/doctor"
	"github.com/ufpga/ufpga/lib/config"
	"github.com/ufpga/ufpga/lib/pci"
	"github.com/ufpga/ufpga/lib/sysfs"
	"github.com/ufpga/ufpga/lib/ufpga"
)

type doctorParams struct {
	cli.JSONOutput
	Global *globalFlags
}

func doctorCommand(env Environment, globals *globalFlags) *cli.Command {
	params := doctorParams{Global: globals}

	return &cli.Command{
		Name:    "doctor",
		Summary: "Diagnose card discovery and register access",
		Description: `Walk the discovery path step by step and report where it breaks: the
configuration, the sysfs class directory, each class entry's PCI
location and device number, the matching node under the device
directory, and decoding of the version and monitor registers.

Exits non-zero when any check fails.`,
		Usage: "ufpgactl doctor [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			results := runDoctor(env, params.Global, logger)
			if done, err := params.EmitJSON(env.Stdout, doctor.BuildJSON(results)); done {
				if err == nil && doctor.Failed(results) {
					err = &cli.ExitError{Code: 1}
				}
				return err
			}
			return doctor.PrintChecklist(env.Stdout, results, env.Styled)
		},
	}
}

func runDoctor(env Environment, globals *globalFlags, logger *slog.Logger) []doctor.Result {
	cfg, err := globals.load()
	if err != nil {
		return []doctor.Result{doctor.FailWithHint("configuration", err.Error(),
			"Fix the file named by --config or the flag values.")}
	}
	results := []doctor.Result{doctor.Pass("configuration", configSource(globals, cfg))}

	catalog := newCatalog(env, cfg, logger)
	classPath := catalog.ClassPath(cfg.Class)
	entries, err := catalog.Scan(cfg.Class)
	if err != nil {
		return append(results, doctor.FailWithHint("device class", err.Error(),
			fmt.Sprintf("Load the %s driver and check that %s exists.", cfg.Class, classPath)))
	}
	if len(entries) == 0 {
		return append(results, doctor.Warn("device class", fmt.Sprintf("%s has no entries", classPath)))
	}
	results = append(results, doctor.Pass("device class",
		fmt.Sprintf("%s has %d %s", classPath, len(entries), plural(len(entries), "entry", "entries"))))

	for _, entry := range entries {
		results = append(results, checkEntry(env, cfg, entry, logger)...)
	}
	return results
}

// checkEntry reports discovery of one entry, then register access
// through its node. Register checks are skipped when discovery failed.
func checkEntry(env Environment, cfg *config.Config, entry sysfs.Entry, logger *slog.Logger) []doctor.Result {
	discovery := entry.Name
	registers := entry.Name + " registers"

	if !entry.Resolved() {
		return []doctor.Result{
			doctor.FailWithHint(discovery, entry.Err.Error(), lookupHint(cfg, entry.Err)),
			doctor.Skip(registers, "no device node"),
		}
	}

	record := *entry.Record
	results := []doctor.Result{doctor.Pass(discovery,
		fmt.Sprintf("%s (dev %s) on %s", record.Location, record.Number, record.Mount))}

	device := ufpga.NewDevice(record, env.Namespace, logger)
	version, err := device.ReadVersion()
	if err != nil {
		return append(results, registerFailure(registers, record.Mount, err))
	}
	telemetry, err := device.ReadTelemetry()
	if err != nil {
		return append(results, registerFailure(registers, record.Mount, err))
	}
	return append(results, doctor.Pass(registers, fmt.Sprintf("version %q, temperature %.2f °C",
		version, telemetry.Temperature.Current)))
}

func registerFailure(name, mount string, err error) doctor.Result {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return doctor.FailWithHint(name, err.Error(),
			fmt.Sprintf("Run as root or grant read access to %s.", mount))
	case errors.Is(err, ufpga.ErrEndOfData):
		return doctor.FailWithHint(name, err.Error(),
			"The node exposes fewer registers than expected. Check that it belongs to a uFPGA card.")
	default:
		return doctor.Fail(name, err.Error())
	}
}

func lookupHint(cfg *config.Config, err error) string {
	switch {
	case errors.Is(err, sysfs.ErrNoMatchingNode):
		return fmt.Sprintf("No character device under %s carries this number. Check udev rules or --dev-root.", cfg.DevRoot)
	case errors.Is(err, pci.ErrInvalidLocation):
		return "The entry's device link does not point at a PCI function."
	case errors.Is(err, fs.ErrNotExist):
		return "The entry is incomplete. The driver may still be probing the card."
	default:
		return ""
	}
}

func configSource(globals *globalFlags, cfg *config.Config) string {
	source := "defaults"
	if globals.ConfigPath != "" {
		source = globals.ConfigPath
	}
	return fmt.Sprintf("%s (class %s, sysfs %s, dev %s)", source, cfg.Class, cfg.SysRoot, cfg.DevRoot)
}

func plural(count int, singular, pluralForm string) string {
	if count == 1 {
		return singular
	}
	return pluralForm
}
