// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package sysfs

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ufpga/ufpga/lib/devfs"
	"github.com/ufpga/ufpga/lib/pci"
)

// Default filesystem roots.
const (
	DefaultSysRoot = "/sys"
	DefaultDevRoot = "/dev"
)

// ErrClassUnavailable is returned when the class directory cannot be
// listed. It is the only error that aborts a scan.
var ErrClassUnavailable = errors.New("device class unavailable")

// ErrDeviceNotFound is returned by [Select] for a selector that
// matches no record.
var ErrDeviceNotFound = errors.New("device not found")

// Record is a class entry that resolved to a device node.
type Record struct {
	// Name is the class entry name at scan time. It identifies the
	// entry, not the node: the node may carry a different name.
	Name string `json:"name" desc:"class entry name"`

	// Mount is the path of the matched character device node.
	Mount string `json:"mount" desc:"device node path"`

	// Location is the device's PCI bus location.
	Location pci.Location `json:"location" desc:"PCI bus location (DDDD:BB:DD.F)"`

	// Number is the device number the node was matched by.
	Number devfs.DevNumber `json:"dev" desc:"character device number (MAJOR:MINOR)"`
}

// Entry is the outcome of resolving one class entry. Exactly one of
// Record and Err is set.
type Entry struct {
	Name   string
	Record *Record
	Err    error
}

// Resolved reports whether the entry produced a Record.
func (e Entry) Resolved() bool {
	return e.Record != nil
}

// Options configures a Catalog. Zero fields take defaults.
type Options struct {
	// Namespace is the filesystem view. Defaults to devfs.OS().
	Namespace devfs.Namespace

	// SysRoot is the sysfs mount point. Defaults to "/sys".
	SysRoot string

	// DevRoot is the device node directory. Defaults to "/dev".
	DevRoot string

	// Logger receives a debug record for every skipped entry. Nil
	// discards.
	Logger *slog.Logger
}

// Catalog enumerates the devices of a class.
type Catalog struct {
	namespace devfs.Namespace
	sysRoot   string
	resolver  *Resolver
	logger    *slog.Logger
}

// NewCatalog creates a Catalog.
func NewCatalog(options Options) *Catalog {
	if options.Namespace == nil {
		options.Namespace = devfs.OS()
	}
	if options.SysRoot == "" {
		options.SysRoot = DefaultSysRoot
	}
	if options.DevRoot == "" {
		options.DevRoot = DefaultDevRoot
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		namespace: options.Namespace,
		sysRoot:   options.SysRoot,
		resolver:  NewResolver(options.Namespace, options.DevRoot),
		logger:    options.Logger,
	}
}

// Namespace returns the filesystem view the catalog reads through.
func (c *Catalog) Namespace() devfs.Namespace {
	return c.namespace
}

// Resolver returns the catalog's resolver.
func (c *Catalog) Resolver() *Resolver {
	return c.resolver
}

// ClassPath returns the class directory for className.
func (c *Catalog) ClassPath(className string) string {
	return filepath.Join(c.sysRoot, "class", className)
}

// Scan resolves every entry of the class directory, in lexical order.
// Per-entry failures are reported in the returned entries; only a
// failure to list the class directory is returned as an error.
func (c *Catalog) Scan(className string) ([]Entry, error) {
	if className == "" || className == "." || className == ".." || strings.ContainsRune(className, '/') {
		return nil, fmt.Errorf("%w: invalid class name %q", ErrClassUnavailable, className)
	}
	classPath := c.ClassPath(className)
	names, err := c.namespace.ReadDir(classPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassUnavailable, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		record, err := c.resolve(filepath.Join(classPath, name), name)
		if err != nil {
			c.logger.Debug("skipping unresolvable class entry",
				"class", className,
				"entry", name,
				"error", err)
			entries = append(entries, Entry{Name: name, Err: err})
			continue
		}
		entries = append(entries, Entry{Name: name, Record: record})
	}
	return entries, nil
}

// Enumerate returns a Record for every class entry that resolves.
// Entries that do not resolve are left out without error.
func (c *Catalog) Enumerate(className string) ([]Record, error) {
	entries, err := c.Scan(className)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if entry.Resolved() {
			records = append(records, *entry.Record)
		}
	}
	return records, nil
}

func (c *Catalog) resolve(entryDir, name string) (*Record, error) {
	location, err := c.resolver.ResolveLocation(entryDir)
	if err != nil {
		return nil, err
	}
	mount, number, err := c.resolver.ResolveNode(entryDir)
	if err != nil {
		return nil, err
	}
	return &Record{
		Name:     name,
		Mount:    mount,
		Location: location,
		Number:   number,
	}, nil
}

// Select returns the records matching any selector, in record order.
// A selector matches a record's entry name, node path, node base name
// or canonical PCI location. Every selector must match at least one
// record. With no selectors, all records are returned.
func Select(records []Record, selectors []string) ([]Record, error) {
	if len(selectors) == 0 {
		return records, nil
	}
	matched := make([]bool, len(records))
	for _, selector := range selectors {
		found := false
		for index, record := range records {
			if record.matches(selector) {
				matched[index] = true
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, selector)
		}
	}
	var selected []Record
	for index, record := range records {
		if matched[index] {
			selected = append(selected, record)
		}
	}
	return selected, nil
}

func (r Record) matches(selector string) bool {
	return selector == r.Name ||
		selector == r.Mount ||
		selector == filepath.Base(r.Mount) ||
		selector == r.Location.String()
}
