// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package ufpga

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Register offsets into the device node.
const (
	RegisterVersion = 0x1000

	// monitorBase is the start of the analog monitor block.
	monitorBase = 0x3200

	RegisterTemperature    = monitorBase + 0x00
	RegisterSupplyCore     = monitorBase + 0x04
	RegisterSupplyAux      = monitorBase + 0x08
	RegisterTemperatureMax = monitorBase + 0x80
	RegisterSupplyCoreMax  = monitorBase + 0x84
	RegisterSupplyAuxMax   = monitorBase + 0x88
	RegisterTemperatureMin = monitorBase + 0x90
	RegisterSupplyCoreMin  = monitorBase + 0x94
	RegisterSupplyAuxMin   = monitorBase + 0x98
)

// registerWidth is the size of every register in bytes.
const registerWidth = 4

// byteOrder is the register byte order. The card is little-endian
// regardless of the host.
var byteOrder = binary.LittleEndian

var (
	// ErrEndOfData is returned when a register read returns fewer
	// than four bytes.
	ErrEndOfData = errors.New("short register read")

	// ErrDataFormat is returned when register contents cannot be
	// decoded as the expected type.
	ErrDataFormat = errors.New("malformed register data")
)

// readRegister performs one positioned read of a 32-bit register and
// returns its raw bytes.
func readRegister(reader io.ReaderAt, offset int64) ([registerWidth]byte, error) {
	var word [registerWidth]byte
	count, err := reader.ReadAt(word[:], offset)
	if count == registerWidth {
		return word, nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return word, fmt.Errorf("register 0x%04x: %w (%d of %d bytes)", offset, ErrEndOfData, count, registerWidth)
	}
	return word, fmt.Errorf("reading register 0x%04x: %w", offset, err)
}

// readWord reads a register as an unsigned little-endian integer.
func readWord(reader io.ReaderAt, offset int64) (uint32, error) {
	word, err := readRegister(reader, offset)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint32(word[:]), nil
}

// decodeVersion interprets the version register as text.
func decodeVersion(word [registerWidth]byte) (string, error) {
	if !utf8.Valid(word[:]) {
		return "", fmt.Errorf("version register % x: %w: not valid UTF-8", word, ErrDataFormat)
	}
	return string(word[:]), nil
}
