// File: filex.go
// Title: Core File Utilities
// Description: Input file checks and truncating/appending writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Close errors are returned from WriteFile and AppendFile

package filex

import (
	"fmt"
	"os"
)

// DefaultFilePerm is the permission used for newly created output files
const DefaultFilePerm os.FileMode = 0o644

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadable checks if the path is a regular file that can be opened for reading
func IsReadable(path string) bool {
	if !IsFile(path) {
		return false
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}

// ===============================
// File Writing
// ===============================

// WriteFile writes data to a file, creating it if necessary and truncating
// existing content
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return writeWithFlags(path, data, perm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, "write")
}

// AppendFile appends data to a file, creating it if necessary
func AppendFile(path string, data []byte, perm os.FileMode) error {
	return writeWithFlags(path, data, perm, os.O_CREATE|os.O_WRONLY|os.O_APPEND, "append")
}

func writeWithFlags(path string, data []byte, perm os.FileMode, flags int, verb string) (err error) {
	file, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return fmt.Errorf("failed to open file for %s %s: %w", verb, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", path, cerr)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to %s file %s: %w", verb, path, err)
	}
	return nil
}
