// Package log provides structured logging for datafilter.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with key-value fields, JSON, text
//              and logfmt output, correlation ids and integration with the
//              structured error package. Loggers are immutable: every With*
//              call returns a configured copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Synchronous writer only, discard logger for library callers
//
// Usage:
//
//	import mdwlog "github.com/msto63/datafilter/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelInfo,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "datafilter",
//	}).WithCorrelationID(runID)
//
//	logger.Info("Filtering file", mdwlog.Field("path", path))
//	logger.LogError(err)
package log
