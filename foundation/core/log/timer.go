// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on Stop.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	stopped   bool
}

// NewTimer creates and starts a timer for an operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
	}
}

// Stop logs the elapsed time at debug level and returns it. Only the first
// call logs.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := time.Since(t.start)
	if t.stopped || t.logger == nil {
		return elapsed
	}
	t.stopped = true

	entryFields := Fields{"operation": t.operation}
	for _, f := range fields {
		entryFields = entryFields.Merge(f)
	}
	t.logger.logWithDuration(LevelDebug, "Operation completed", elapsed, entryFields)
	return elapsed
}
