// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/sysfs"
	"github.com/ufpga/ufpga/lib/ufpga"
)

type statusParams struct {
	cli.JSONOutput
	Verbose bool `json:"-" flag:"verbose,v" desc:"include the version tag and monitor readings"`
	Global  *globalFlags
}

// statusReport is the JSON form of one device's status.
type statusReport struct {
	sysfs.Record
	Version   string           `json:"version,omitempty"`
	Telemetry *ufpga.Telemetry `json:"telemetry,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func statusCommand(env Environment, globals *globalFlags) *cli.Command {
	params := statusParams{Global: globals}

	return &cli.Command{
		Name:    "status",
		Summary: "Describe uFPGA cards",
		Description: `Print one status line per card. With --verbose, the version tag and
the temperature and supply readings follow each line.

NAME selects cards by class entry name, node path, node name or PCI
location. Without NAME every card is shown.`,
		Usage: "ufpgactl status [flags] [NAME...]",
		Examples: []cli.Example{
			{
				Description: "Full status of every card",
				Command:     "ufpgactl status --verbose",
			},
			{
				Description: "One card by PCI location, as JSON",
				Command:     "ufpgactl status --json 0000:03:00.0",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.Global.load()
			if err != nil {
				return err
			}
			devices, err := selectDevices(env, cfg, logger, args)
			if err != nil {
				return err
			}

			if params.OutputJSON {
				reports := make([]statusReport, 0, len(devices))
				for _, device := range devices {
					reports = append(reports, buildStatusReport(device, params.Verbose))
				}
				return cli.WriteJSON(env.Stdout, reports)
			}

			for i, device := range devices {
				if params.Verbose && i > 0 {
					fmt.Fprintln(env.Stdout)
				}
				fmt.Fprintln(env.Stdout, device.Status(params.Verbose))
			}
			return nil
		},
	}
}

// buildStatusReport reads the registers when verbose is set. Unlike
// Device.Status, the first failure is reported instead of dropped.
func buildStatusReport(device *ufpga.Device, verbose bool) statusReport {
	report := statusReport{Record: device.Record()}
	if !verbose {
		return report
	}
	version, err := device.ReadVersion()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Version = version
	telemetry, err := device.ReadTelemetry()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Telemetry = &telemetry
	return report
}
