// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package ufpga

import (
	"fmt"
	"io"
)

// ADC transfer functions of the on-die system monitor. The constants
// come from the reference design and are exact.
const (
	adcFullScale = 65536

	temperatureGain   = 503.975
	temperatureOffset = 273.15

	supplyGain = 3.0
)

// TemperatureCelsius converts a raw temperature sample to degrees
// Celsius. The formula is applied to the full 32-bit word.
func TemperatureCelsius(raw uint32) float64 {
	return float64(raw)*temperatureGain/adcFullScale - temperatureOffset
}

// SupplyVolts converts a raw supply sample to volts.
func SupplyVolts(raw uint32) float64 {
	return float64(raw) * supplyGain / adcFullScale
}

// AnalogTriple is one monitored quantity: the live sample and the
// minimum and maximum seen since the monitor was last reset.
type AnalogTriple struct {
	Current float64 `json:"current" desc:"live reading"`
	Min     float64 `json:"min" desc:"lowest reading since reset"`
	Max     float64 `json:"max" desc:"highest reading since reset"`
}

// Telemetry is one decode of the analog monitor block.
type Telemetry struct {
	// Temperature is the die temperature in degrees Celsius.
	Temperature AnalogTriple `json:"temperature" desc:"die temperature in degrees Celsius"`

	// SupplyCore is the core supply (VCCINT) in volts.
	SupplyCore AnalogTriple `json:"supply_core" desc:"core supply in volts"`

	// SupplyAux is the auxiliary supply (VCCAUX) in volts.
	SupplyAux AnalogTriple `json:"supply_aux" desc:"auxiliary supply in volts"`
}

// monitorChannel describes one quantity in the monitor block.
type monitorChannel struct {
	current, max, min int64
	convert           func(uint32) float64
	target            func(*Telemetry) *AnalogTriple
}

var monitorChannels = [...]monitorChannel{
	{
		current: RegisterTemperature, max: RegisterTemperatureMax, min: RegisterTemperatureMin,
		convert: TemperatureCelsius,
		target:  func(telemetry *Telemetry) *AnalogTriple { return &telemetry.Temperature },
	},
	{
		current: RegisterSupplyCore, max: RegisterSupplyCoreMax, min: RegisterSupplyCoreMin,
		convert: SupplyVolts,
		target:  func(telemetry *Telemetry) *AnalogTriple { return &telemetry.SupplyCore },
	},
	{
		current: RegisterSupplyAux, max: RegisterSupplyAuxMax, min: RegisterSupplyAuxMin,
		convert: SupplyVolts,
		target:  func(telemetry *Telemetry) *AnalogTriple { return &telemetry.SupplyAux },
	},
}

// decodeTelemetry reads all nine monitor registers. On any failure it
// returns the zero Telemetry.
func decodeTelemetry(reader io.ReaderAt) (Telemetry, error) {
	var telemetry Telemetry
	for _, channel := range monitorChannels {
		current, err := readWord(reader, channel.current)
		if err != nil {
			return Telemetry{}, err
		}
		maximum, err := readWord(reader, channel.max)
		if err != nil {
			return Telemetry{}, err
		}
		minimum, err := readWord(reader, channel.min)
		if err != nil {
			return Telemetry{}, err
		}
		*channel.target(&telemetry) = AnalogTriple{
			Current: channel.convert(current),
			Min:     channel.convert(minimum),
			Max:     channel.convert(maximum),
		}
	}
	return telemetry, nil
}

// Format renders the triple with the given unit, e.g.
// "45.20 °C (min 31.02, max 61.77)".
func (triple AnalogTriple) Format(unit string) string {
	return fmt.Sprintf("%.2f %s (min %.2f, max %.2f)", triple.Current, unit, triple.Min, triple.Max)
}
