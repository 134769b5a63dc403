// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
)

// Register writes and bitstream loading are reserved in the command
// tree. Each validates its arguments and then reports that it is not
// implemented.

type writeParams struct {
	Global *globalFlags
}

func flashCommand(globals *globalFlags) *cli.Command {
	return reservedCommand(globals, "flash", "Load a bitstream onto a card",
		"ufpgactl flash [flags] NAME BITSTREAM", 2)
}

func pokeCommand(globals *globalFlags) *cli.Command {
	return reservedCommand(globals, "poke", "Write a register",
		"ufpgactl poke [flags] NAME OFFSET VALUE", 3)
}

func resetCommand(globals *globalFlags) *cli.Command {
	return reservedCommand(globals, "reset", "Reset a card and its monitor extremes",
		"ufpgactl reset [flags] NAME", 1)
}

func reservedCommand(globals *globalFlags, name, summary, usage string, arity int) *cli.Command {
	params := writeParams{Global: globals}
	return &cli.Command{
		Name:    name,
		Summary: summary + " (not implemented)",
		Usage:   usage,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != arity {
				return cli.Validation("usage: %s", usage)
			}
			return cli.ErrNotImplemented("ufpgactl " + name)
		},
	}
}
