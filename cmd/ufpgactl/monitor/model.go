// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ufpga/ufpga/lib/tui"
	"github.com/ufpga/ufpga/lib/ufpga"
)

// Source supplies telemetry snapshots. *ufpga.Device implements it.
type Source interface {
	ReadTelemetry() (ufpga.Telemetry, error)
}

// Gauge scales. The supply scale is the ADC's full range.
const (
	temperatureFloor   = -40.0
	temperatureCeiling = 125.0
	supplyFloor        = 0.0
	supplyCeiling      = 3.0

	defaultGaugeWidth = 40
	labelWidth        = 12
)

// telemetryMsg carries the result of one poll.
type telemetryMsg struct {
	telemetry ufpga.Telemetry
	err       error
	at        time.Time
}

// tickMsg asks for the next poll. generation ties it to the poll that
// scheduled it so a manual refresh does not start a second poll chain.
type tickMsg struct {
	generation int
}

// Model is the dashboard state.
type Model struct {
	title    string
	source   Source
	interval time.Duration
	theme    tui.Theme
	keys     KeyMap
	now      func() time.Time

	telemetry  ufpga.Telemetry
	hasReading bool
	err        error
	updated    time.Time
	polls      int
	failures   int
	paused     bool
	generation int
	width      int
}

// NewModel returns a dashboard for source polled every interval.
func NewModel(title string, source Source, interval time.Duration) Model {
	return Model{
		title:    title,
		source:   source,
		interval: interval,
		theme:    tui.DefaultTheme,
		keys:     DefaultKeyMap,
		now:      time.Now,
		width:    labelWidth + defaultGaugeWidth + 40,
	}
}

// Init implements tea.Model. The first poll runs immediately.
func (model Model) Init() tea.Cmd {
	return model.poll()
}

func (model Model) poll() tea.Cmd {
	source, now := model.source, model.now
	return func() tea.Msg {
		telemetry, err := source.ReadTelemetry()
		return telemetryMsg{telemetry: telemetry, err: err, at: now()}
	}
}

func (model Model) scheduleTick() tea.Cmd {
	generation := model.generation
	return tea.Tick(model.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case telemetryMsg:
		model.polls++
		model.updated = message.at
		model.err = message.err
		if message.err != nil {
			model.failures++
		} else {
			model.telemetry = message.telemetry
			model.hasReading = true
		}
		model.generation++
		return model, model.scheduleTick()

	case tickMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if model.paused {
			return model, model.scheduleTick()
		}
		return model, model.poll()

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Pause):
			model.paused = !model.paused
			return model, nil
		case key.Matches(message, model.keys.Refresh):
			return model, model.poll()
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
	}
	return model, nil
}

// View implements tea.Model.
func (model Model) View() string {
	var builder strings.Builder

	header := model.title
	if model.paused {
		header += "  (paused)"
	}
	builder.WriteString(model.theme.HeaderStyle().Render(header))
	builder.WriteString("\n\n")

	if !model.hasReading {
		builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("waiting for first reading..."))
		builder.WriteString("\n")
	} else {
		gaugeWidth := max(model.width-labelWidth-40, 10)
		model.writeRow(&builder, "Temperature", "°C", model.telemetry.Temperature, temperatureFloor, temperatureCeiling, gaugeWidth)
		model.writeRow(&builder, "VCCINT", "V", model.telemetry.SupplyCore, supplyFloor, supplyCeiling, gaugeWidth)
		model.writeRow(&builder, "VCCAUX", "V", model.telemetry.SupplyAux, supplyFloor, supplyCeiling, gaugeWidth)
	}

	builder.WriteString("\n")
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if !model.updated.IsZero() {
		builder.WriteString(faint.Render(fmt.Sprintf("updated %s  polls %d  failures %d  every %s",
			model.updated.Format("15:04:05"), model.polls, model.failures, model.interval)))
		builder.WriteString("\n")
	}
	if model.err != nil {
		// Open errors carry the full node path; keep them on one line.
		message := ansi.Truncate("error: "+model.err.Error(), model.width, "…")
		builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.StatusFail).Render(message))
		builder.WriteString("\n")
	}

	var help []string
	for _, binding := range model.keys.bindings() {
		help = append(help, binding.Help().Key+" "+binding.Help().Desc)
	}
	builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(strings.Join(help, " • ")))
	return builder.String()
}

func (model Model) writeRow(builder *strings.Builder, label, unit string, triple ufpga.AnalogTriple, floor, ceiling float64, gaugeWidth int) {
	fmt.Fprintf(builder, "%-*s %s %8.2f %-2s  min %7.2f  max %7.2f\n",
		labelWidth, label,
		tui.RenderGauge(model.theme, gaugeWidth, floor, ceiling, triple.Current, triple.Max),
		triple.Current, unit, triple.Min, triple.Max)
}
