// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package pci

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidLocation is wrapped by every [ParseError].
var ErrInvalidLocation = errors.New("invalid PCI location")

// locationPattern is anchored: the whole input must be a location.
var locationPattern = regexp.MustCompile(`^(\d{4}):(\d{2}):(\d{2})\.(\d)$`)

// fieldNames lists the capture groups of locationPattern in order.
var fieldNames = [...]string{"domain", "bus", "device", "function"}

// Location identifies a function on a PCI bus. The zero value is the
// valid location 0000:00:00.0. Locations are comparable with ==.
type Location struct {
	Domain   uint8
	Bus      uint8
	Device   uint8
	Function uint8
}

// ParseError reports a string that is not a valid location.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string

	// Field names the component that overflowed, or is empty when the
	// input did not match the pattern at all.
	Field string

	// Err is the underlying strconv error for overflowing fields.
	Err error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v %q: want DDDD:BB:DD.F", ErrInvalidLocation, e.Input)
	}
	return fmt.Sprintf("%v %q: %s: %v", ErrInvalidLocation, e.Input, e.Field, e.Err)
}

// Unwrap exposes ErrInvalidLocation and, for overflow, the strconv error.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidLocation}
	}
	return []error{ErrInvalidLocation, e.Err}
}

// ParseLocation parses text of the form DDDD:BB:DD.F. Every field is
// decimal and must fit in a uint8.
func ParseLocation(text string) (Location, error) {
	groups := locationPattern.FindStringSubmatch(text)
	if groups == nil {
		return Location{}, &ParseError{Input: text}
	}

	var parsed [len(fieldNames)]uint8
	for index, name := range fieldNames {
		value, err := strconv.ParseUint(groups[index+1], 10, 8)
		if err != nil {
			return Location{}, &ParseError{Input: text, Field: name, Err: err}
		}
		parsed[index] = uint8(value)
	}
	return Location{
		Domain:   parsed[0],
		Bus:      parsed[1],
		Device:   parsed[2],
		Function: parsed[3],
	}, nil
}

// MustParseLocation is like [ParseLocation] but panics on error. It is
// intended for constants in tests and fixtures.
func MustParseLocation(text string) Location {
	location, err := ParseLocation(text)
	if err != nil {
		panic(err)
	}
	return location
}

// String returns the canonical DDDD:BB:DD.F form. ParseLocation of the
// result always yields the same Location.
func (l Location) String() string {
	return fmt.Sprintf("%04d:%02d:%02d.%d", l.Domain, l.Bus, l.Device, l.Function)
}

// MarshalText implements encoding.TextMarshaler so that JSON, YAML and
// CBOR carry the canonical string rather than four numbers.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
