package main

import (
	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
	"github.com/iota-uz/hrp/modules/hrp/services"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK         = 0
	exitValidation = 2
	exitUsage      = 3
	exitNotFound   = 4
	exitUpstream   = 5
	exitOutput     = 6
	exitDrift      = 7
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if ok := as(err, &ce); ok {
		return ce.code
	}
	return 1
}

// classify attaches an exit code to an error returned by the HRP client.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var invalid *identifier.InvalidError
	switch {
	case as(err, &invalid), is(err, services.ErrInvalidSearchParams):
		return withCode(exitValidation, err)
	case is(err, hrpws.ErrNotFound):
		return withCode(exitNotFound, err)
	default:
		return withCode(exitUpstream, err)
	}
}
