// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package devfs is the narrow view of the filesystem that device
// resolution and register decoding need: list a directory, read a
// symlink, read a small attribute file, read the device number of a
// node, and open a node for positioned reads.
//
// [OS] returns the real implementation backed by golang.org/x/sys/unix.
// [Fake] is an in-memory tree for tests: it can hold character device
// nodes with arbitrary device numbers and register images, which a test
// running without CAP_MKNOD cannot create on a real filesystem.
//
// Device numbers are handled as [DevNumber], the packed dev_t the
// kernel reports in st_rdev. Two nodes refer to the same device exactly
// when their DevNumbers are equal, whatever their names.
package devfs
