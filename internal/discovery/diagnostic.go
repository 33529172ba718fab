// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable scan warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal per-candidate error.
	SeverityError Severity = "error"
)

type (
	// Severity represents scan diagnostic severity.
	Severity string

	// Diagnostic records one per-candidate incident from a scan.
	// Candidates that fail to probe are skipped, never fatal, and the
	// reasons are returned to callers for consistent rendering policy
	// instead of being written to stderr.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "probe_failed").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the candidate root the diagnostic refers to.
		Path string
		// Cause is the underlying error, for programmatic inspection.
		Cause error
	}

	// ScanResult bundles the registry produced by a scan with the
	// diagnostics collected along the way.
	ScanResult struct {
		Registry    *Registry
		Diagnostics []Diagnostic
	}
)
