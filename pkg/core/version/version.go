// ============================================================================
// datafilter - Line classification and aggregation utility
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	Application = "1.0.0"

	// Version of the output file format
	OutputFormat = "1.0.0"

	// Schema version of the run journal
	Journal = "1.0.0"
)

// Set at build time via -ldflags
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "output", "output-format":
		return OutputFormat
	case "journal":
		return Journal
	default:
		return Application
	}
}

// String returns the full version line shown by the version command
func String() string {
	return fmt.Sprintf("datafilter %s (commit %s, built %s, %s/%s)",
		Application, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
