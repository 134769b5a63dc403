// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/version"
)

type versionParams struct {
	cli.JSONOutput
}

func versionCommand(env Environment) *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print build information",
		Usage:   "ufpgactl version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if done, err := params.EmitJSON(env.Stdout, version.Build()); done {
				return err
			}
			_, err := fmt.Fprintf(env.Stdout, "ufpgactl %s\n", version.Full())
			return err
		},
	}
}
