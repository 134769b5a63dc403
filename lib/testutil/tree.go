// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file at path within root, creating parent
// directories as needed, and returns the full path.
func WriteFile(t *testing.T, root, path, content string) string {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
	return fullPath
}

// Symlink creates a symlink at path within root pointing to target.
// The target is stored as given and need not exist.
func Symlink(t *testing.T, root, path, target string) string {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.Symlink(target, fullPath); err != nil {
		t.Fatalf("symlink %s -> %s: %v", fullPath, target, err)
	}
	return fullPath
}

// ClassEntry creates sys/class/<class>/<name> within root with a
// "device" link to sys/devices/pci0000:00/<pciSlot> and a "dev"
// attribute holding number. An empty pciSlot omits the link; an empty
// number omits the attribute. Returns the entry directory.
func ClassEntry(t *testing.T, root, class, name, pciSlot, number string) string {
	t.Helper()
	entry := filepath.Join("sys/class", class, name)
	if err := os.MkdirAll(filepath.Join(root, entry), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", entry, err)
	}
	if pciSlot != "" {
		deviceDir := filepath.Join(root, "sys/devices/pci0000:00", pciSlot)
		if err := os.MkdirAll(deviceDir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", deviceDir, err)
		}
		Symlink(t, root, filepath.Join(entry, "device"), "../../../devices/pci0000:00/"+pciSlot)
	}
	if number != "" {
		WriteFile(t, root, filepath.Join(entry, "dev"), number+"\n")
	}
	return filepath.Join(root, entry)
}
