// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Namespace is the set of filesystem operations used to resolve and
// read devices. Paths are absolute paths in the namespace.
type Namespace interface {
	// ReadDir returns the names of the entries in a directory, sorted
	// lexically.
	ReadDir(path string) ([]string, error)

	// Readlink returns the target of a symbolic link without
	// resolving it.
	Readlink(path string) (string, error)

	// ReadFile returns the contents of a regular file.
	ReadFile(path string) ([]byte, error)

	// Node reports whether path is itself a character device node (a
	// symlink to one does not count) and, if so, its device number.
	Node(path string) (DevNumber, bool, error)

	// Open opens a file for positioned reads.
	Open(path string) (File, error)
}

// File is an open device node. Register reads are positioned reads;
// the ufpga driver ignores the file offset left by previous reads.
type File interface {
	io.ReaderAt
	io.Closer
}

// OS returns the Namespace backed by the running system.
func OS() Namespace {
	return osNamespace{}
}

type osNamespace struct{}

func (osNamespace) ReadDir(path string) ([]string, error) {
	// os.ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (osNamespace) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

func (osNamespace) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osNamespace) Node(path string) (DevNumber, bool, error) {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return 0, false, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	if uint32(stat.Mode)&unix.S_IFMT != unix.S_IFCHR {
		return 0, false, nil
	}
	return DevNumber(stat.Rdev), true, nil
}

func (osNamespace) Open(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}
