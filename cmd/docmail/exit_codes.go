package main

import (
	"errors"
	"os"

	"github.com/mwellner/go-docmail/internal/config"
	"github.com/mwellner/go-docmail/internal/docref"
)

// Exit codes for the docmail CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid command, flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// Sentinel errors raised by command handling.
var (
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoInput        = errors.New("no input file specified")
	ErrRemoteInput    = errors.New("remote documents are not supported")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrRemoteInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidMarker) ||
		errors.Is(err, config.ErrInvalidColumn) ||
		errors.Is(err, docref.ErrInvalidColumn) ||
		errors.Is(err, docref.ErrNoDocumentID) ||
		errors.Is(err, docref.ErrNoSpreadsheetID) {
		return ExitUsage
	}

	return ExitGeneral
}
