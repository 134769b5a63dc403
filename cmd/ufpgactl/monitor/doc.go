// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package monitor is the live telemetry dashboard behind
// "ufpgactl monitor". It is a bubbletea model that polls one device on
// a fixed interval and renders die temperature and supply voltages as
// gauges with their recorded minimum and maximum.
//
// Polls never overlap: the next tick is scheduled only after the
// previous read has returned. A failed read keeps the last good
// snapshot on screen and shows the error beneath it.
package monitor
