// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package pci parses and formats PCI bus locations in the fixed
// decimal form the ufpga driver publishes through its sysfs "device"
// link: DDDD:BB:DD.F (domain, bus, device, function).
//
// The form is decimal, not the hexadecimal form lspci prints. Each
// field must fit in eight bits; a four-digit domain above 255 is
// rejected rather than truncated.
package pci
