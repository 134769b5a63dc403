// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for building synthetic
// sysfs trees on the real filesystem under t.TempDir().
//
// [WriteFile] and [Symlink] create parent directories as needed.
// [ClassEntry] lays out one class entry directory (a "device" link to
// a PCI device directory and a "dev" attribute) the way the kernel
// does for a character device class.
//
// Character device nodes cannot be created without CAP_MKNOD, so tests
// that need device numbers in /dev use devfs.Fake instead.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no internal dependencies.
package testutil
