// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrInvalidNumber is wrapped by every [NumberError].
var ErrInvalidNumber = errors.New("invalid device number")

// DevNumber is a packed device number in the kernel's dev_t layout:
// the major number occupies the high-order bits and the minor number
// the low-order bits, exactly as stat(2) reports st_rdev.
type DevNumber uint64

// MakeDevNumber packs a major/minor pair.
func MakeDevNumber(major, minor uint32) DevNumber {
	return DevNumber(unix.Mkdev(major, minor))
}

// Major returns the major (driver) number.
func (n DevNumber) Major() uint32 {
	return unix.Major(uint64(n))
}

// Minor returns the minor (instance) number.
func (n DevNumber) Minor() uint32 {
	return unix.Minor(uint64(n))
}

// String renders the number in the MAJOR:MINOR form used by sysfs.
func (n DevNumber) String() string {
	return fmt.Sprintf("%d:%d", n.Major(), n.Minor())
}

// NumberError reports text that is not a MAJOR:MINOR pair.
type NumberError struct {
	Input string
	Err   error
}

func (e *NumberError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %q: want MAJOR:MINOR", ErrInvalidNumber, e.Input)
	}
	return fmt.Sprintf("%v %q: %v", ErrInvalidNumber, e.Input, e.Err)
}

// Unwrap exposes ErrInvalidNumber and the strconv error, if any.
func (e *NumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidNumber}
	}
	return []error{ErrInvalidNumber, e.Err}
}

// ParseDevNumber parses the contents of a sysfs "dev" attribute, e.g.
// "241:0\n". Surrounding whitespace is ignored. Both halves are
// unsigned decimal and may carry leading zeros, so "8:1" and
// "008:0001" produce the same DevNumber.
func ParseDevNumber(text string) (DevNumber, error) {
	trimmed := strings.TrimSpace(text)
	majorText, minorText, found := strings.Cut(trimmed, ":")
	if !found || majorText == "" || minorText == "" {
		return 0, &NumberError{Input: text}
	}
	major, err := strconv.ParseUint(majorText, 10, 32)
	if err != nil {
		return 0, &NumberError{Input: text, Err: err}
	}
	minor, err := strconv.ParseUint(minorText, 10, 32)
	if err != nil {
		return 0, &NumberError{Input: text, Err: err}
	}
	return MakeDevNumber(uint32(major), uint32(minor)), nil
}

// MarshalText implements encoding.TextMarshaler using the MAJOR:MINOR form.
func (n DevNumber) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *DevNumber) UnmarshalText(text []byte) error {
	parsed, err := ParseDevNumber(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
