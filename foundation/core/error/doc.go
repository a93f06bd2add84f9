// Package error provides structured error handling for datafilter.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a code, a severity, the operation that failed and
//              free-form details. The logging package derives the log level of
//              an error from its severity, so every failure the filter core
//              reports is logged consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the filter core
//
// Usage:
//
//	import mdwerror "github.com/msto63/datafilter/foundation/core/error"
//
//	err := mdwerror.Wrap(ioErr, "cannot write collection").
//		WithCode(mdwerror.CodeWriteFailure).
//		WithOperation("store.save").
//		WithDetail("path", "out/integers.txt")
//
//	if mdwerror.HasCode(err, mdwerror.CodeWriteFailure) {
//		// handle write failures specifically
//	}
package error
