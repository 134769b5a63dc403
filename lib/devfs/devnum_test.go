// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"errors"
	"testing"
)

func TestParseDevNumber(t *testing.T) {
	tests := []struct {
		input        string
		major, minor uint32
	}{
		{"8:1", 8, 1},
		{"8:1\n", 8, 1},
		{"008:0001", 8, 1},
		{"  241:0 \n", 241, 0},
		{"259:65536", 259, 65536},
		{"4095:1048575", 4095, 1048575},
	}
	for _, test := range tests {
		number, err := ParseDevNumber(test.input)
		if err != nil {
			t.Fatalf("ParseDevNumber(%q) error: %v", test.input, err)
		}
		if number.Major() != test.major || number.Minor() != test.minor {
			t.Errorf("ParseDevNumber(%q) = %d:%d, want %d:%d",
				test.input, number.Major(), number.Minor(), test.major, test.minor)
		}
	}
}

func TestParseDevNumberEquivalentForms(t *testing.T) {
	plain, err := ParseDevNumber("8:1")
	if err != nil {
		t.Fatalf("ParseDevNumber: %v", err)
	}
	padded, err := ParseDevNumber("0008:00001\n")
	if err != nil {
		t.Fatalf("ParseDevNumber: %v", err)
	}
	if plain != padded {
		t.Errorf("8:1 packed to %#x but 0008:00001 packed to %#x", uint64(plain), uint64(padded))
	}
	if plain != MakeDevNumber(8, 1) {
		t.Errorf("ParseDevNumber(8:1) = %#x, want MakeDevNumber(8, 1) = %#x",
			uint64(plain), uint64(MakeDevNumber(8, 1)))
	}
}

func TestMakeDevNumberLayout(t *testing.T) {
	// Classic 8-bit major / 8-bit minor numbers pack as major<<8 | minor.
	if got := uint64(MakeDevNumber(8, 1)); got != 0x801 {
		t.Errorf("MakeDevNumber(8, 1) = %#x, want 0x801", got)
	}
	if got := uint64(MakeDevNumber(241, 3)); got != 0xf103 {
		t.Errorf("MakeDevNumber(241, 3) = %#x, want 0xf103", got)
	}
	if MakeDevNumber(1, 0) == MakeDevNumber(0, 1<<8) {
		t.Error("distinct major/minor pairs packed to the same key")
	}
}

func TestParseDevNumberRejects(t *testing.T) {
	for _, input := range []string{"", "8", "8:", ":1", "a:1", "8:b", "-1:0", "8:1:2", "4294967296:0"} {
		_, err := ParseDevNumber(input)
		if err == nil {
			t.Errorf("ParseDevNumber(%q) succeeded, want error", input)
			continue
		}
		if !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseDevNumber(%q) error %v does not wrap ErrInvalidNumber", input, err)
		}
	}
}

func TestDevNumberString(t *testing.T) {
	if got := MakeDevNumber(241, 7).String(); got != "241:7" {
		t.Errorf("String() = %q, want 241:7", got)
	}
}
