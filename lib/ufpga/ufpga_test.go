// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package ufpga

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"math"
	"strings"
	"testing"

	"github.com/ufpga/ufpga/lib/devfs"
	"github.com/ufpga/ufpga/lib/pci"
	"github.com/ufpga/ufpga/lib/sysfs"
)

const (
	testMount = "/dev/ufpga0"
	// imageSize covers every register in the map.
	imageSize = RegisterSupplyAuxMin + registerWidth
)

var testNumber = devfs.MakeDevNumber(240, 0)

// registerImage returns a register image with the given words stored
// little-endian at their offsets.
func registerImage(words map[int64]uint32) []byte {
	image := make([]byte, imageSize)
	for offset, value := range words {
		binary.LittleEndian.PutUint32(image[offset:], value)
	}
	return image
}

// healthyImage has version "0107", telemetry at mid-scale, and
// distinct min/max values.
func healthyImage() []byte {
	image := registerImage(map[int64]uint32{
		RegisterTemperature:    32768,
		RegisterTemperatureMax: 40000,
		RegisterTemperatureMin: 30000,
		RegisterSupplyCore:     32768,
		RegisterSupplyCoreMax:  65536,
		RegisterSupplyCoreMin:  0,
		RegisterSupplyAux:      16384,
		RegisterSupplyAuxMax:   21845,
		RegisterSupplyAuxMin:   10923,
	})
	copy(image[RegisterVersion:], "0107")
	return image
}

func testDevice(t *testing.T, image []byte) (*Device, *devfs.Fake) {
	t.Helper()
	namespace := devfs.NewFake()
	if image != nil {
		namespace.Mknod(testMount, testNumber, image)
	}
	record := sysfs.Record{
		Name:     "ufpga0",
		Mount:    testMount,
		Location: pci.MustParseLocation("0000:03:00.0"),
		Number:   testNumber,
	}
	return NewDevice(record, namespace, nil), namespace
}

func assertClosed(t *testing.T, namespace *devfs.Fake) {
	t.Helper()
	if open := namespace.OpenHandles(); open != 0 {
		t.Errorf("%d handles left open", open)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name    string
		convert func(uint32) float64
		raw     uint32
		want    float64
	}{
		{"temperature zero", TemperatureCelsius, 0, -273.15},
		{"temperature mid-scale", TemperatureCelsius, 32768, -21.1625},
		{"temperature full-scale", TemperatureCelsius, 65536, 230.825},
		{"supply zero", SupplyVolts, 0, 0},
		{"supply mid-scale", SupplyVolts, 32768, 1.5},
		{"supply full-scale", SupplyVolts, 65536, 3.0},
		// The full word is converted, not just the low 16 bits.
		{"supply above 16 bits", SupplyVolts, 131072, 6.0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.convert(test.raw)
			if !approxEqual(got, test.want) {
				t.Errorf("convert(%d) = %v, want %v", test.raw, got, test.want)
			}
		})
	}

	if got := SupplyVolts(32768); got != 1.5 {
		t.Errorf("SupplyVolts(32768) = %v, want exactly 1.5", got)
	}
}

func TestReadVersion(t *testing.T) {
	device, namespace := testDevice(t, healthyImage())
	version, err := device.ReadVersion()
	if err != nil {
		t.Fatalf("ReadVersion: %v", err)
	}
	if version != "0107" {
		t.Errorf("version = %q, want %q", version, "0107")
	}
	assertClosed(t, namespace)
}

func TestReadVersionInvalidUTF8(t *testing.T) {
	image := healthyImage()
	copy(image[RegisterVersion:], []byte{0xff, 0xfe, 0x00, 0x41})
	device, namespace := testDevice(t, image)

	_, err := device.ReadVersion()
	if !errors.Is(err, ErrDataFormat) {
		t.Fatalf("ReadVersion error = %v, want ErrDataFormat", err)
	}
	assertClosed(t, namespace)
}

func TestReadVersionShortRead(t *testing.T) {
	for _, size := range []int{0, RegisterVersion, RegisterVersion + 3} {
		device, namespace := testDevice(t, healthyImage()[:size])
		_, err := device.ReadVersion()
		if !errors.Is(err, ErrEndOfData) {
			t.Errorf("image of %d bytes: error = %v, want ErrEndOfData", size, err)
		}
		assertClosed(t, namespace)
	}
}

func TestReadVersionMissingNode(t *testing.T) {
	device, _ := testDevice(t, nil)
	_, err := device.ReadVersion()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadTelemetry(t *testing.T) {
	device, namespace := testDevice(t, healthyImage())
	telemetry, err := device.ReadTelemetry()
	if err != nil {
		t.Fatalf("ReadTelemetry: %v", err)
	}
	assertClosed(t, namespace)

	want := Telemetry{
		Temperature: AnalogTriple{
			Current: TemperatureCelsius(32768),
			Min:     TemperatureCelsius(30000),
			Max:     TemperatureCelsius(40000),
		},
		SupplyCore: AnalogTriple{Current: 1.5, Min: 0, Max: 3.0},
		SupplyAux: AnalogTriple{
			Current: 0.75,
			Min:     SupplyVolts(10923),
			Max:     SupplyVolts(21845),
		},
	}
	if telemetry != want {
		t.Errorf("telemetry = %+v\nwant %+v", telemetry, want)
	}
	if !approxEqual(telemetry.Temperature.Current, -21.1625) {
		t.Errorf("temperature = %v, want -21.1625", telemetry.Temperature.Current)
	}
}

func TestReadTelemetryLittleEndian(t *testing.T) {
	image := healthyImage()
	// 0x00008000 little-endian; a big-endian decode would read 0x00800000.
	copy(image[RegisterSupplyCore:], []byte{0x00, 0x80, 0x00, 0x00})
	device, _ := testDevice(t, image)

	telemetry, err := device.ReadTelemetry()
	if err != nil {
		t.Fatalf("ReadTelemetry: %v", err)
	}
	if telemetry.SupplyCore.Current != 1.5 {
		t.Errorf("core supply = %v, want 1.5", telemetry.SupplyCore.Current)
	}
}

func TestReadTelemetryShortRead(t *testing.T) {
	offsets := []int64{
		RegisterTemperature, RegisterSupplyCore, RegisterSupplyAux,
		RegisterTemperatureMax, RegisterSupplyCoreMax, RegisterSupplyAuxMax,
		RegisterTemperatureMin, RegisterSupplyCoreMin, RegisterSupplyAuxMin,
	}
	for _, offset := range offsets {
		for _, missing := range []int64{1, registerWidth} {
			// Truncate the image so the register at offset is cut short
			// (or entirely absent) while every earlier register is intact.
			size := offset + registerWidth - missing
			image := healthyImage()[:size]
			device, namespace := testDevice(t, image)

			telemetry, err := device.ReadTelemetry()
			if !errors.Is(err, ErrEndOfData) {
				t.Errorf("truncated at 0x%04x: error = %v, want ErrEndOfData", size, err)
			}
			if telemetry != (Telemetry{}) {
				t.Errorf("truncated at 0x%04x: got partial telemetry %+v", size, telemetry)
			}
			assertClosed(t, namespace)
		}
	}
}

func TestReadTelemetryOpenFailure(t *testing.T) {
	device, namespace := testDevice(t, healthyImage())
	namespace.FailOpen(testMount, fs.ErrPermission)

	_, err := device.ReadTelemetry()
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("error = %v, want fs.ErrPermission", err)
	}
	assertClosed(t, namespace)
}

func TestStatusMinimal(t *testing.T) {
	device, namespace := testDevice(t, healthyImage())
	got := device.Status(false)
	want := "uFPGA device @ 0000:03:00.0 on /dev/ufpga0"
	if got != want {
		t.Errorf("Status(false) = %q, want %q", got, want)
	}
	// Non-verbose status does not touch the node.
	namespace.Remove(testMount)
	if got := device.Status(false); got != want {
		t.Errorf("Status(false) without node = %q, want %q", got, want)
	}
}

func TestStatusVerbose(t *testing.T) {
	device, namespace := testDevice(t, healthyImage())
	got := device.Status(true)
	assertClosed(t, namespace)

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("Status(true) has %d lines, want 5:\n%s", len(lines), got)
	}
	if lines[0] != "uFPGA device @ 0000:03:00.0 on /dev/ufpga0" {
		t.Errorf("identity line = %q", lines[0])
	}
	for _, fragment := range []string{"0107", "-21.16 °C", "1.50 V", "0.75 V"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Status(true) missing %q:\n%s", fragment, got)
		}
	}
}

func TestStatusVerboseFallback(t *testing.T) {
	identity := "uFPGA device @ 0000:03:00.0 on /dev/ufpga0"
	invalidVersion := healthyImage()
	copy(invalidVersion[RegisterVersion:], []byte{0xc3, 0x28, 0xa0, 0xa1})

	tests := []struct {
		name  string
		image []byte
		setup func(*devfs.Fake)
	}{
		{name: "missing node", image: nil},
		{name: "open denied", image: healthyImage(), setup: func(namespace *devfs.Fake) {
			namespace.FailOpen(testMount, fs.ErrPermission)
		}},
		{name: "invalid version", image: invalidVersion},
		{name: "version only", image: healthyImage()[:RegisterVersion+registerWidth]},
		{name: "telemetry truncated", image: healthyImage()[:RegisterSupplyAuxMin+2]},
		{name: "empty image", image: []byte{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			device, namespace := testDevice(t, test.image)
			if test.setup != nil {
				test.setup(namespace)
			}
			if got := device.Status(true); got != identity {
				t.Errorf("Status(true) = %q, want %q", got, identity)
			}
			assertClosed(t, namespace)
		})
	}
}
