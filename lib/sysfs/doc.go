// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysfs discovers devices of a kernel device class and
// resolves each one to its PCI location and its device node.
//
// Each entry of /sys/class/<class>/ carries two attributes the
// resolver trusts:
//
//	device  symlink whose final component is the PCI location, e.g.
//	        ../../../0000:03:00.0
//	dev     the character device number, e.g. "241:0"
//
// The entry's own name is not trusted to match anything in /dev: udev
// rules, or an operator, may rename or recreate the node. [Resolver]
// therefore finds the node by scanning /dev for a character device
// whose device number equals the one in "dev". The scan is in lexical
// order and the first match wins.
//
// [Catalog.Enumerate] returns only the entries that resolve; entries
// with a broken link, a bad "dev" attribute, or no matching node are
// dropped. [Catalog.Scan] returns every entry with either its
// [Record] or the [LookupError] that caused it to be skipped. Only a
// failure to list the class directory itself is returned as an error.
//
// Nothing is cached: every call re-reads sysfs and rescans /dev. A
// resolved node path can go stale if the node is renamed afterwards.
package sysfs
