// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the ufpgactl command tree.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/devfs"
)

// Environment is what the commands read from and write to. The zero
// value of each field selects the real process environment.
type Environment struct {
	// Stdout receives command output.
	Stdout io.Writer

	// Stderr receives help text.
	Stderr io.Writer

	// Namespace is the filesystem view for sysfs and device nodes.
	Namespace devfs.Namespace

	// Styled enables colored output. Root sets it for a terminal
	// stdout unless NO_COLOR is set.
	Styled bool

	// NewLogger builds the command logger at a level. Defaults to
	// cli.NewCommandLogger.
	NewLogger func(level slog.Level) *slog.Logger
}

func (env *Environment) withDefaults() {
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}
	if env.Namespace == nil {
		env.Namespace = devfs.OS()
	}
	if env.NewLogger == nil {
		env.NewLogger = func(level slog.Level) *slog.Logger {
			return cli.NewCommandLogger(level)
		}
	}
}

// Root builds the command tree for the real process environment.
func Root() *cli.Command {
	return NewRoot(Environment{
		Styled: term.IsTerminal(int(os.Stdout.Fd())) && !termenv.EnvNoColor(),
	})
}

// NewRoot builds the command tree for env.
func NewRoot(env Environment) *cli.Command {
	env.withDefaults()
	globals := &globalFlags{}

	return &cli.Command{
		Name: "ufpgactl",
		Description: `ufpgactl: inspect uFPGA accelerator cards.

Discovers cards through the sysfs device class, resolves each one to its
PCI bus location and character device node, and decodes the version tag
and analog monitor registers.`,
		Logger: func() *slog.Logger { return globals.logger(env) },
		Output: env.Stderr,
		Subcommands: []*cli.Command{
			listCommand(env, globals),
			statusCommand(env, globals),
			telemetryCommand(env, globals),
			monitorCommand(env, globals),
			doctorCommand(env, globals),
			flashCommand(globals),
			pokeCommand(globals),
			resetCommand(globals),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "List every card",
				Command:     "ufpgactl list",
			},
			{
				Description: "Show version and monitor readings for one card",
				Command:     "ufpgactl status --verbose 0000:03:00.0",
			},
			{
				Description: "Watch temperature and supplies live",
				Command:     "ufpgactl monitor ufpga0",
			},
			{
				Description: "Find out why a card is missing",
				Command:     "ufpgactl doctor",
			},
		},
	}
}
