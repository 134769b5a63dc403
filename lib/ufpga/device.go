// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package ufpga

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ufpga/ufpga/lib/devfs"
	"github.com/ufpga/ufpga/lib/sysfs"
)

// Device is an enumerated uFPGA card. It holds no open handle: every
// read opens the node and closes it before returning.
type Device struct {
	record    sysfs.Record
	namespace devfs.Namespace
	logger    *slog.Logger
}

// NewDevice returns a Device for a catalog record. A nil namespace
// means the host filesystem; a nil logger discards.
func NewDevice(record sysfs.Record, namespace devfs.Namespace, logger *slog.Logger) *Device {
	if namespace == nil {
		namespace = devfs.OS()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Device{
		record:    record,
		namespace: namespace,
		logger:    logger.With("device", record.Name),
	}
}

// Record returns the catalog record the device was built from.
func (d *Device) Record() sysfs.Record {
	return d.record
}

// ReadVersion returns the four-character version tag.
func (d *Device) ReadVersion() (string, error) {
	file, err := d.namespace.Open(d.record.Mount)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", d.record.Mount, err)
	}
	defer file.Close()

	word, err := readRegister(file, RegisterVersion)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.record.Mount, err)
	}
	return decodeVersion(word)
}

// ReadTelemetry decodes the analog monitor block. Any failed read
// returns the zero Telemetry along with the error.
func (d *Device) ReadTelemetry() (Telemetry, error) {
	file, err := d.namespace.Open(d.record.Mount)
	if err != nil {
		return Telemetry{}, fmt.Errorf("opening %s: %w", d.record.Mount, err)
	}
	defer file.Close()

	telemetry, err := decodeTelemetry(file)
	if err != nil {
		return Telemetry{}, fmt.Errorf("%s: %w", d.record.Mount, err)
	}
	return telemetry, nil
}

// Status describes the device in a form suitable for humans. The
// first line always identifies the device. With verbose set, the
// version and monitor readings follow when both can be decoded; if
// either fails the identity line is returned alone.
func (d *Device) Status(verbose bool) string {
	identity := fmt.Sprintf("uFPGA device @ %s on %s", d.record.Location, d.record.Mount)
	if !verbose {
		return identity
	}

	version, err := d.ReadVersion()
	if err != nil {
		d.logger.Debug("version unavailable", "error", err)
		return identity
	}
	telemetry, err := d.ReadTelemetry()
	if err != nil {
		d.logger.Debug("telemetry unavailable", "error", err)
		return identity
	}

	var builder strings.Builder
	builder.WriteString(identity)
	fmt.Fprintf(&builder, "\n  version:     %s", version)
	fmt.Fprintf(&builder, "\n  temperature: %s", telemetry.Temperature.Format("°C"))
	fmt.Fprintf(&builder, "\n  VCCINT:      %s", telemetry.SupplyCore.Format("V"))
	fmt.Fprintf(&builder, "\n  VCCAUX:      %s", telemetry.SupplyAux.Format("V"))
	return builder.String()
}
