// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package ufpga decodes the register space a uFPGA accelerator exposes
// through its character device node.
//
// The ufpga driver maps BAR0 of the card and serves it through read(2):
// a read at a 4-byte aligned offset returns exactly one 32-bit register,
// and a read at any other offset returns nothing. Every register access
// here is therefore a single positioned 4-byte read.
//
// Two regions are decoded:
//
//   - the version tag, four ASCII bytes at 0x1000
//   - the analog monitor block at 0x3200: live, maximum and minimum
//     samples of die temperature and the core and auxiliary supply
//     voltages, as raw 16-bit ADC codes in 32-bit little-endian words
//
// [Device] opens the node for each operation and closes it before
// returning. A short read anywhere in the monitor block fails the
// whole read; a partial [Telemetry] is never returned.
package ufpga
