// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for ufpgactl's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Check outcome colors (doctor).
	StatusPass lipgloss.Color
	StatusWarn lipgloss.Color
	StatusFail lipgloss.Color
	StatusSkip lipgloss.Color

	// Monitor gauges. GaugeRange marks the span between the recorded
	// minimum and maximum.
	GaugeFill  lipgloss.Color
	GaugeRange lipgloss.Color
	GaugeTrack lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// StatusColor returns the color for a check status string ("pass",
// "warn", "fail", "skip") and FaintText for anything else.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "pass":
		return theme.StatusPass
	case "warn":
		return theme.StatusWarn
	case "fail":
		return theme.StatusFail
	case "skip":
		return theme.StatusSkip
	default:
		return theme.FaintText
	}
}

// HeaderStyle is the style for table headers and panel titles.
func (theme Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	StatusPass: lipgloss.Color("114"), // green
	StatusWarn: lipgloss.Color("220"), // amber
	StatusFail: lipgloss.Color("196"), // red
	StatusSkip: lipgloss.Color("245"), // gray

	GaugeFill:  lipgloss.Color("75"),  // blue
	GaugeRange: lipgloss.Color("60"),  // muted purple
	GaugeTrack: lipgloss.Color("238"), // dark gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
