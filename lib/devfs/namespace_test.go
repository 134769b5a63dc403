// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestOSReadDirSorted(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"ufpga1", "ufpga0", "null", "card0"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	names, err := OS().ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	want := []string{"card0", "null", "ufpga0", "ufpga1"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadDir = %v, want %v", names, want)
	}
}

func TestOSReadlinkDoesNotResolve(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "device")
	target := "../../../devices/pci0000:00/0000:00:01.0/0000:03:00.0"
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got, err := OS().Readlink(link)
	if err != nil {
		t.Fatalf("Readlink: %v", err)
	}
	if got != target {
		t.Errorf("Readlink = %q, want %q", got, target)
	}
}

func TestOSNodeRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ufpga0")
	if err := os.WriteFile(path, []byte("not a device"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, isChar, err := OS().Node(path)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if isChar {
		t.Error("Node reported a regular file as a character device")
	}
}

func TestOSNodeMissing(t *testing.T) {
	_, _, err := OS().Node(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Node(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSNodeDevNull(t *testing.T) {
	if _, err := os.Lstat("/dev/null"); err != nil {
		t.Skipf("no /dev/null: %v", err)
	}

	number, isChar, err := OS().Node("/dev/null")
	if err != nil {
		t.Fatalf("Node(/dev/null): %v", err)
	}
	if !isChar {
		t.Fatal("/dev/null is not reported as a character device")
	}
	if number != MakeDevNumber(1, 3) {
		t.Errorf("/dev/null number = %s, want 1:3", number)
	}
}

func TestOSNodeSymlinkNotFollowed(t *testing.T) {
	if _, err := os.Lstat("/dev/null"); err != nil {
		t.Skipf("no /dev/null: %v", err)
	}
	link := filepath.Join(t.TempDir(), "null-link")
	if err := os.Symlink("/dev/null", link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	_, isChar, err := OS().Node(link)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if isChar {
		t.Error("Node followed a symlink to a character device")
	}
}

func TestOSOpenReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image")
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := OS().Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	buffer := make([]byte, 4)
	if _, err := file.ReadAt(buffer, 4); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if string(buffer) != "4567" {
		t.Errorf("ReadAt(4) = %q, want 4567", buffer)
	}
}

func TestOSOpenMissingReturnsNilFile(t *testing.T) {
	file, err := OS().Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Open(missing) succeeded")
	}
	if file != nil {
		t.Errorf("Open(missing) returned non-nil File %v", file)
	}
}
