// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/codec"
	"github.com/ufpga/ufpga/lib/pci"
	"github.com/ufpga/ufpga/lib/ufpga"
)

type telemetryParams struct {
	cli.JSONOutput
	OutputCBOR bool `json:"-" flag:"cbor" desc:"write a CBOR sequence, one item per card"`
	Global     *globalFlags
}

// telemetryReport is one card's readings in machine-readable output.
type telemetryReport struct {
	Name      string           `json:"name"`
	Mount     string           `json:"mount"`
	Location  pci.Location     `json:"location"`
	Telemetry *ufpga.Telemetry `json:"telemetry,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func telemetryCommand(env Environment, globals *globalFlags) *cli.Command {
	params := telemetryParams{Global: globals}

	return &cli.Command{
		Name:    "telemetry",
		Summary: "Read temperature and supply monitors",
		Description: `Decode the analog monitor block of each selected card: die temperature,
core supply (VCCINT) and auxiliary supply (VCCAUX), each with the
minimum and maximum recorded since the monitor was last reset.

A card that cannot be read is reported and the command exits non-zero
after the remaining cards are printed.`,
		Usage: "ufpgactl telemetry [flags] [NAME...]",
		Examples: []cli.Example{
			{
				Description: "Stream readings to a CBOR consumer",
				Command:     "ufpgactl telemetry --cbor > readings.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("telemetry", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if params.OutputJSON && params.OutputCBOR {
				return cli.Validation("--json and --cbor are mutually exclusive")
			}
			cfg, err := params.Global.load()
			if err != nil {
				return err
			}
			devices, err := selectDevices(env, cfg, logger, args)
			if err != nil {
				return err
			}

			reports := make([]telemetryReport, 0, len(devices))
			failed := 0
			for _, device := range devices {
				record := device.Record()
				report := telemetryReport{Name: record.Name, Mount: record.Mount, Location: record.Location}
				telemetry, err := device.ReadTelemetry()
				if err != nil {
					logger.Warn("telemetry read failed", "device", record.Name, "error", err)
					report.Error = err.Error()
					failed++
				} else {
					report.Telemetry = &telemetry
				}
				reports = append(reports, report)
			}

			switch {
			case params.OutputJSON:
				err = cli.WriteJSON(env.Stdout, reports)
			case params.OutputCBOR:
				encoder := codec.NewEncoder(env.Stdout)
				for _, report := range reports {
					if err = encoder.Encode(report); err != nil {
						break
					}
				}
			default:
				err = writeTelemetryTable(env, reports)
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func writeTelemetryTable(env Environment, reports []telemetryReport) error {
	table := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(table)
		}
		fmt.Fprintf(table, "%s (%s on %s)\n", report.Name, report.Location, report.Mount)
		if report.Telemetry == nil {
			fmt.Fprintf(table, "  error:\t%s\n", report.Error)
			continue
		}
		fmt.Fprintf(table, "  temperature:\t%s\n", report.Telemetry.Temperature.Format("°C"))
		fmt.Fprintf(table, "  VCCINT:\t%s\n", report.Telemetry.SupplyCore.Format("V"))
		fmt.Fprintf(table, "  VCCAUX:\t%s\n", report.Telemetry.SupplyAux.Format("V"))
	}
	return table.Flush()
}
