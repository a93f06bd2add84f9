// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of a filter
//              run. Codes are stable strings so they can be matched by callers
//              and appear verbatim in structured logs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Input/output codes for the filter core

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Input files
	CodeMissingInputFile Code = "MISSING_INPUT_FILE"
	CodeReadFailure      Code = "READ_FAILURE"

	// Output files
	CodeWriteFailure Code = "WRITE_FAILURE"

	// Configuration and environment
	CodeConfigurationFallback Code = "CONFIGURATION_FALLBACK"
	CodeInvalidConfig         Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeMissingInputFile, CodeReadFailure,
		CodeWriteFailure,
		CodeConfigurationFallback, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeMissingInputFile, CodeReadFailure:
		return "input"
	case CodeWriteFailure:
		return "output"
	case CodeConfigurationFallback, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
