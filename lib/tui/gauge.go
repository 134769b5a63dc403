// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge cell glyphs.
const (
	gaugeFill  = "█"
	gaugeRange = "▒"
	gaugeTrack = "░"
)

// GaugeCells lays out a horizontal gauge of width cells for a reading
// on the scale [floor, ceiling]. Cells up to the current value are
// fill; cells beyond it up to the recorded maximum are range; the rest
// are track. Values outside the scale are clamped. The result is
// unstyled, one glyph per cell.
func GaugeCells(width int, floor, ceiling, current, maximum float64) []string {
	if width <= 0 {
		return nil
	}
	filled := scaleCells(width, floor, ceiling, current)
	reached := max(filled, scaleCells(width, floor, ceiling, maximum))

	cells := make([]string, width)
	for index := range cells {
		switch {
		case index < filled:
			cells[index] = gaugeFill
		case index < reached:
			cells[index] = gaugeRange
		default:
			cells[index] = gaugeTrack
		}
	}
	return cells
}

// RenderGauge renders [GaugeCells] with the theme's gauge colors.
func RenderGauge(theme Theme, width int, floor, ceiling, current, maximum float64) string {
	styles := map[string]lipgloss.Style{
		gaugeFill:  lipgloss.NewStyle().Foreground(theme.GaugeFill),
		gaugeRange: lipgloss.NewStyle().Foreground(theme.GaugeRange),
		gaugeTrack: lipgloss.NewStyle().Foreground(theme.GaugeTrack),
	}

	var builder strings.Builder
	cells := GaugeCells(width, floor, ceiling, current, maximum)
	// Render runs of equal glyphs together to keep escape sequences short.
	for start := 0; start < len(cells); {
		end := start
		for end < len(cells) && cells[end] == cells[start] {
			end++
		}
		builder.WriteString(styles[cells[start]].Render(strings.Repeat(cells[start], end-start)))
		start = end
	}
	return builder.String()
}

// scaleCells maps value on [floor, ceiling] to a cell count in
// [0, width].
func scaleCells(width int, floor, ceiling, value float64) int {
	if ceiling <= floor {
		return 0
	}
	fraction := (value - floor) / (ceiling - floor)
	fraction = min(max(fraction, 0), 1)
	return int(fraction*float64(width) + 0.5)
}
