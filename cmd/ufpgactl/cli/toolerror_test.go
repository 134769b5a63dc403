// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("device class %q not found", "ufpga").
		WithHint("Is the ufpga kernel module loaded?")

	want := "device class \"ufpga\" not found\n\nIs the ufpga kernel module loaded?"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_UnwrapsInnerError(t *testing.T) {
	err := Forbidden("opening /dev/ufpga0: %w", fs.ErrPermission)
	wrapped := fmt.Errorf("status: %w", err)

	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("errors.Is should reach the inner error through ToolError")
	}
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) || toolErr.Category != CategoryForbidden {
		t.Errorf("errors.As found %+v, want forbidden ToolError", toolErr)
	}
}

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 5}, 5},
		{"wrapped exit error", fmt.Errorf("doctor: %w", &ExitError{Code: 1}), 1},
		{"validation", Validation("bad"), 2},
		{"not found", NotFound("missing"), 3},
		{"forbidden", Forbidden("denied"), 4},
		{"internal", Internal("bug"), 1},
		{"unknown category", &ToolError{Category: "odd", Err: errors.New("x")}, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ExitCodeOf(test.err); got != test.want {
				t.Errorf("ExitCodeOf(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}
