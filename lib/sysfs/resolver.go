// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package sysfs

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ufpga/ufpga/lib/devfs"
	"github.com/ufpga/ufpga/lib/pci"
)

// Attribute names inside a class entry directory.
const (
	// LocationLink is the symlink to the PCI device directory.
	LocationLink = "device"

	// NumberFile holds the MAJOR:MINOR character device number.
	NumberFile = "dev"

	// NodeScan is the [LookupError.Artifact] for a failed device
	// directory scan.
	NodeScan = "node"
)

// ErrNoMatchingNode is wrapped by a [LookupError] when no character
// device in the device directory carries the entry's device number.
var ErrNoMatchingNode = errors.New("no device node with matching device number")

// LookupError reports why a class entry could not be resolved.
type LookupError struct {
	// Entry is the class entry directory.
	Entry string

	// Artifact is what failed: "device" (the location link), "dev"
	// (the device number attribute) or "node" (the /dev scan).
	Artifact string

	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("resolving %s of %s: %v", e.Artifact, e.Entry, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Resolver maps a class entry directory to its PCI location and device
// node.
type Resolver struct {
	namespace devfs.Namespace
	devRoot   string
}

// NewResolver creates a Resolver that scans devRoot (normally "/dev")
// for device nodes.
func NewResolver(namespace devfs.Namespace, devRoot string) *Resolver {
	return &Resolver{namespace: namespace, devRoot: devRoot}
}

// ResolveLocation reads the entry's "device" symlink and parses the
// final component of its target as a PCI location.
func (r *Resolver) ResolveLocation(entryDir string) (pci.Location, error) {
	target, err := r.namespace.Readlink(filepath.Join(entryDir, LocationLink))
	if err != nil {
		return pci.Location{}, &LookupError{Entry: entryDir, Artifact: LocationLink, Err: err}
	}
	location, err := pci.ParseLocation(filepath.Base(target))
	if err != nil {
		return pci.Location{}, &LookupError{Entry: entryDir, Artifact: LocationLink, Err: err}
	}
	return location, nil
}

// ReadNumber reads and parses the entry's "dev" attribute.
func (r *Resolver) ReadNumber(entryDir string) (devfs.DevNumber, error) {
	data, err := r.namespace.ReadFile(filepath.Join(entryDir, NumberFile))
	if err != nil {
		return 0, &LookupError{Entry: entryDir, Artifact: NumberFile, Err: err}
	}
	number, err := devfs.ParseDevNumber(string(data))
	if err != nil {
		return 0, &LookupError{Entry: entryDir, Artifact: NumberFile, Err: err}
	}
	return number, nil
}

// ResolveNode returns the path of the first character device in the
// device directory whose device number matches the entry's "dev"
// attribute, together with that number. Node names are ignored.
func (r *Resolver) ResolveNode(entryDir string) (string, devfs.DevNumber, error) {
	number, err := r.ReadNumber(entryDir)
	if err != nil {
		return "", 0, err
	}
	mount, err := r.FindNode(number)
	if err != nil {
		return "", 0, &LookupError{Entry: entryDir, Artifact: NodeScan, Err: err}
	}
	return mount, number, nil
}

// FindNode scans the device directory in lexical order and returns the
// first character device node numbered number. Entries that cannot be
// examined are passed over.
func (r *Resolver) FindNode(number devfs.DevNumber) (string, error) {
	names, err := r.namespace.ReadDir(r.devRoot)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		candidate := filepath.Join(r.devRoot, name)
		candidateNumber, isChar, err := r.namespace.Node(candidate)
		if err != nil || !isChar {
			continue
		}
		if candidateNumber == number {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w %s in %s", ErrNoMatchingNode, number, r.devRoot)
}
