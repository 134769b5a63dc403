// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ufpga/ufpga/cmd/ufpgactl/cli"
	"github.com/ufpga/ufpga/lib/tui"
)

// PrintChecklist prints check results as a human-readable checklist.
// With styled set, the status column is colored from the theme. It
// returns an ExitError with code 1 when any check failed.
func PrintChecklist(w io.Writer, results []Result, styled bool) error {
	hints := 0
	for _, result := range results {
		label := fmt.Sprintf("[%-4s]", strings.ToUpper(string(result.Status)))
		if styled {
			label = lipgloss.NewStyle().
				Foreground(tui.DefaultTheme.StatusColor(string(result.Status))).
				Render(label)
		}
		fmt.Fprintf(w, "%s  %-32s  %s\n", label, result.Name, result.Message)
		if result.Status == StatusFail && result.Hint != "" {
			fmt.Fprintf(w, "        %-32s  hint: %s\n", "", result.Hint)
			hints++
		}
	}

	fmt.Fprintln(w)

	if Failed(results) {
		if hints > 0 {
			fmt.Fprintln(w, "Some checks failed; see the hints above.")
		} else {
			fmt.Fprintln(w, "Some checks failed.")
		}
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintln(w, "All checks passed.")
	return nil
}
