// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors. The severity decides the log level
//              an error is reported at; it never decides whether a run stops.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-18 v0.2.0: Severity mapping for input/output codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem the run works around without data loss
	// Examples: a missing input file, an output directory fallback
	SeverityLow Severity = iota

	// SeverityMedium indicates a problem that loses part of the run's data
	// Examples: a failed write of one collection, a read error mid-file
	SeverityMedium

	// SeverityHigh indicates a problem that prevents a run from starting
	// Examples: an unparseable configuration file
	SeverityHigh

	// SeverityCritical indicates an internal fault
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidConfig:
		return SeverityHigh
	case CodeReadFailure, CodeWriteFailure:
		return SeverityMedium
	case CodeMissingInputFile, CodeConfigurationFallback, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
