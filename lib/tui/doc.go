// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the colour theme and small rendering helpers shared
// by ufpgactl's terminal output: the doctor checklist, table headers
// and the live monitor dashboard.
package tui
