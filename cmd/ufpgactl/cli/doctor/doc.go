// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the result type and report formatting for
// ufpgactl's diagnostic command.
//
// A doctor run is a list of [Result] values built with [Pass], [Fail],
// [Warn] and [Skip]. Failures may carry a hint telling the operator
// what to do. [PrintChecklist] renders the list for humans and returns
// an [cli.ExitError] when anything failed; [BuildJSON] produces the
// --json form.
//
// What to check lives in the commands package.
package doctor
