package fileutil

import "errors"

// Static error definitions for better error handling.
var (
	// ErrFileNotFound indicates that the requested file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrNotRegularFile indicates that the path exists but is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrFileTooLarge indicates that the file exceeds the configured read limit.
	ErrFileTooLarge = errors.New("file is too large")
	// ErrShortWrite indicates that fewer bytes than requested were written.
	ErrShortWrite = errors.New("short write")
)
