// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for ufpgactl.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with examples.
//
// Flags are usually declared as tagged struct fields and bound with
// [FlagsFromParams]; embedding [JSONOutput] adds --json.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors returned from Run are either a categorized [ToolError] or an
// [ExitError] for commands that already printed their own report.
package cli
