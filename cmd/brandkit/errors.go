package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid arguments")
	ErrColorNotFound  = errors.New("color not found")
	ErrContrastFailed = errors.New("contrast audit failed")
	ErrWriteOutput    = errors.New("failed to write output")
)
