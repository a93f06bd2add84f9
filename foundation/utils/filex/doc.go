// Package filex implements the file operations used by the filter core.
//
// Package: filex
// Title: File Operations
// Description: Existence and readability checks for input files and the two
//              output write modes: create-or-truncate and create-or-append.
//              Every function closes the handles it opens, on all paths, and
//              reports close errors because they can hide a failed write.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to input checks and output write modes
//
// Usage:
//
//	if !filex.IsReadable(path) {
//		// skip the input
//	}
//	err := filex.AppendFile("out/integers.txt", []byte("12\n7\n"), filex.DefaultFilePerm)
package filex
