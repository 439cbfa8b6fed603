package util

import (
	stderrors "errors"
)

// Exit codes the wrapper maps well-known failures to. Deploy scripts
// key off of them, so they are part of the CLI contract.
const (
	ExitGeneral        = 1
	ExitMissingIAMUser = 2
	ExitWrongVersion   = 3
)

// ExitError wraps an error with the process exit code it should
// terminate with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCode returns the code carried by err, or ExitGeneral when err
// has no explicit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if stderrors.As(err, &ee) {
		return ee.Code
	}
	return ExitGeneral
}
