// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/cmd/ufpgactl/monitor"
	"github.com/ufpga/ufpga/lib/config"
)

type monitorParams struct {
	Interval time.Duration `json:"-" flag:"interval,i" desc:"poll interval (default from config, 1s)"`
	Global   *globalFlags
}

func monitorCommand(env Environment, globals *globalFlags) *cli.Command {
	params := monitorParams{Global: globals}

	return &cli.Command{
		Name:    "monitor",
		Summary: "Live temperature and supply dashboard",
		Description: `Poll one card's analog monitor block and draw the readings as gauges.
The shaded span on each gauge covers the recorded minimum to maximum.

Keys: p or space pauses, r refreshes now, q quits.`,
		Usage: "ufpgactl monitor [flags] NAME",
		Examples: []cli.Example{
			{
				Description: "Poll every 250 milliseconds",
				Command:     "ufpgactl monitor --interval 250ms ufpga0",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("monitor", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("monitor takes exactly one NAME, got %d", len(args))
			}
			cfg, err := params.Global.load()
			if err != nil {
				return err
			}
			interval := cfg.Monitor.Interval
			if params.Interval != 0 {
				interval = params.Interval
			}
			if interval < config.MinimumInterval {
				return cli.Validation("--interval %s is below the minimum of %s", interval, config.MinimumInterval)
			}
			devices, err := selectDevices(env, cfg, logger, args)
			if err != nil {
				return err
			}
			device := devices[0]
			record := device.Record()

			model := monitor.NewModel(fmt.Sprintf("%s @ %s", record.Name, record.Location), device, interval)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(env.Stdout),
			)
			logger.Debug("starting monitor", "device", record.Name, "interval", interval)
			if _, err := program.Run(); err != nil && ctx.Err() == nil {
				return cli.Internal("monitor: %w", err)
			}
			return nil
		},
	}
}
