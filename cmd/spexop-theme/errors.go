package main

import (
	"errors"

	themeerrors "github.com/spexop/theme/pkg/errors"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1 // the theme was read but did not pass the check
	exitInvalid = 2 // the input could not be read, parsed or sanitized
)

// commandError carries an exit code alongside the message printed by main.
type commandError struct {
	code int
	err  error
}

func (e *commandError) Error() string {
	return e.err.Error()
}

func (e *commandError) Unwrap() error {
	return e.err
}

func failed(err error) error {
	return &commandError{code: exitFailed, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.code
	}

	var (
		parseErr    *themeerrors.ParseError
		sanitizeErr *themeerrors.SanitizationError
		validateErr *themeerrors.ValidationError
	)
	if errors.As(err, &parseErr) || errors.As(err, &sanitizeErr) || errors.As(err, &validateErr) {
		return exitInvalid
	}
	return exitFailed
}
