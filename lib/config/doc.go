// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads ufpgactl configuration.
//
// Configuration comes from a single file named by the --config flag.
// There is no discovery, no ~/.config search and no environment
// variable override: without --config the built-in [Default] applies,
// and command-line flags override whatever the file sets.
//
// The file is YAML. Files ending in .json or .jsonc are also accepted;
// comments and trailing commas are stripped before decoding. Unknown
// keys are rejected so that a misspelled key fails loudly instead of
// silently falling back to a default.
//
//	class: ufpga
//	sys_root: /sys
//	dev_root: /dev
//	log_level: info
//	monitor:
//	  interval: 1s
//
// This package depends on no other ufpga packages.
package config
