// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

// Status is the outcome of a single health check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single health check.
type Result struct {
	Name    string `json:"name"           desc:"health check name"`
	Status  Status `json:"status"         desc:"check outcome: pass, fail, warn, skip"`
	Message string `json:"message"        desc:"human-readable check result"`
	Hint    string `json:"hint,omitempty" desc:"suggested remedy for a failure"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// FailWithHint creates a failing check result with a remedy.
func FailWithHint(name, message, hint string) Result {
	return Result{Name: name, Status: StatusFail, Message: message, Hint: hint}
}

// Warn creates a warning check result. Warnings do not cause the doctor
// command to exit with a non-zero status.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when a prerequisite check
// failed.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Failed reports whether any result failed.
func Failed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// JSONOutput is the JSON output structure for the doctor command.
type JSONOutput struct {
	Checks []Result `json:"checks" desc:"list of health check results"`
	OK     bool     `json:"ok"     desc:"true if no check failed"`
}

// BuildJSON assembles the --json report.
func BuildJSON(results []Result) JSONOutput {
	if results == nil {
		results = []Result{}
	}
	return JSONOutput{Checks: results, OK: !Failed(results)}
}
