package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Exit codes for md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2docx.ErrReadMarkdown) ||
		errors.Is(err, md2docx.ErrWriteDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2docx.ErrInvalidPageSize) ||
		errors.Is(err, md2docx.ErrInvalidOrientation) ||
		errors.Is(err, md2docx.ErrInvalidMargin) ||
		errors.Is(err, md2docx.ErrStyleNotFound) ||
		errors.Is(err, md2docx.ErrInvalidStyleSheet) ||
		errors.Is(err, md2docx.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
