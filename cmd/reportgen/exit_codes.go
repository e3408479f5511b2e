package main

import (
	"errors"
	"os"

	report "github.com/acao/cuyahoga-county-fiscal-flows"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/config"
)

// Exit codes for the reportgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, report.ErrBrowserConnect) ||
		errors.Is(err, report.ErrPageCreate) ||
		errors.Is(err, report.ErrPageLoad) ||
		errors.Is(err, report.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoPages) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, report.ErrEmptyMarkdown) ||
		errors.Is(err, report.ErrInvalidPageSize) ||
		errors.Is(err, report.ErrInvalidOrientation) ||
		errors.Is(err, report.ErrInvalidMargin) ||
		errors.Is(err, report.ErrInvalidTOCDepth) ||
		errors.Is(err, report.ErrInvalidOrphans) ||
		errors.Is(err, report.ErrInvalidWidows) ||
		errors.Is(err, report.ErrStyleNotFound) ||
		errors.Is(err, report.ErrTemplateSetNotFound) ||
		errors.Is(err, report.ErrIncompleteTemplateSet) ||
		errors.Is(err, report.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
