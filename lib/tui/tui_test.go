// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestGaugeCells(t *testing.T) {
	tests := []struct {
		name                    string
		width                   int
		floor, ceiling          float64
		current, maximum        float64
		fill, rangeCells, track int
	}{
		{"half with peak", 10, 0, 100, 50, 80, 5, 3, 2},
		{"empty", 10, 0, 100, 0, 0, 0, 0, 10},
		{"full", 10, 0, 100, 100, 100, 10, 0, 0},
		{"below floor clamps", 10, 0, 100, -20, 10, 0, 1, 9},
		{"above ceiling clamps", 10, 0, 100, 500, 500, 10, 0, 0},
		{"maximum below current", 10, 0, 100, 60, 20, 6, 0, 4},
		{"degenerate scale", 4, 1, 1, 1, 1, 0, 0, 4},
		{"negative floor", 8, -40, 120, 40, 120, 4, 4, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cells := GaugeCells(test.width, test.floor, test.ceiling, test.current, test.maximum)
			if len(cells) != test.width {
				t.Fatalf("len = %d, want %d", len(cells), test.width)
			}
			joined := strings.Join(cells, "")
			want := strings.Repeat(gaugeFill, test.fill) +
				strings.Repeat(gaugeRange, test.rangeCells) +
				strings.Repeat(gaugeTrack, test.track)
			if joined != want {
				t.Errorf("cells = %q, want %q", joined, want)
			}
		})
	}
}

func TestGaugeCellsZeroWidth(t *testing.T) {
	if cells := GaugeCells(0, 0, 1, 0.5, 1); cells != nil {
		t.Errorf("GaugeCells(0) = %v, want nil", cells)
	}
	if rendered := RenderGauge(DefaultTheme, 0, 0, 1, 0.5, 1); rendered != "" {
		t.Errorf("RenderGauge(0) = %q, want empty", rendered)
	}
}

func TestRenderGaugeContainsGlyphs(t *testing.T) {
	rendered := RenderGauge(DefaultTheme, 10, 0, 100, 50, 80)
	for _, glyph := range []string{gaugeFill, gaugeRange, gaugeTrack} {
		if !strings.Contains(rendered, glyph) {
			t.Errorf("rendered gauge %q missing %q", rendered, glyph)
		}
	}
}

func TestStatusColor(t *testing.T) {
	theme := DefaultTheme
	if theme.StatusColor("pass") != theme.StatusPass {
		t.Error("pass color mismatch")
	}
	if theme.StatusColor("fail") != theme.StatusFail {
		t.Error("fail color mismatch")
	}
	if theme.StatusColor("bogus") != theme.FaintText {
		t.Error("unknown status should use FaintText")
	}
}
