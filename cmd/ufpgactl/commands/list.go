// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/sysfs"
	"github.com/ufpga/ufpga/lib/tui"
)

type listParams struct {
	cli.JSONOutput
	Global *globalFlags
}

func listCommand(env Environment, globals *globalFlags) *cli.Command {
	params := listParams{Global: globals}

	return &cli.Command{
		Name:    "list",
		Summary: "List uFPGA cards",
		Description: `List every class entry that resolves to a character device node.

Entries whose PCI location, device number or node cannot be resolved are
skipped; run 'ufpgactl doctor' to see why.`,
		Usage: "ufpgactl list [flags]",
		Examples: []cli.Example{
			{
				Description: "List cards as JSON",
				Command:     "ufpgactl list --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			cfg, err := params.Global.load()
			if err != nil {
				return err
			}
			catalog := newCatalog(env, cfg, logger)
			records, err := catalog.Enumerate(cfg.Class)
			if err != nil {
				return classify(err, catalog, cfg)
			}
			if done, err := params.EmitJSON(env.Stdout, records); done {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(env.Stdout, "No devices found in %s.\n", catalog.ClassPath(cfg.Class))
				return nil
			}
			return writeRecordTable(env.Stdout, records, env.Styled)
		},
	}
}

// writeRecordTable writes records as an aligned table. The header row
// is styled after alignment so escape sequences do not skew the columns.
func writeRecordTable(w io.Writer, records []sysfs.Record, styled bool) error {
	var buffer bytes.Buffer
	table := tabwriter.NewWriter(&buffer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "NAME\tLOCATION\tDEV\tNODE")
	for _, record := range records {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", record.Name, record.Location, record.Number, record.Mount)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	header, rows, _ := strings.Cut(buffer.String(), "\n")
	if styled {
		header = tui.DefaultTheme.HeaderStyle().Render(header)
	}
	_, err := fmt.Fprintf(w, "%s\n%s", header, rows)
	return err
}
