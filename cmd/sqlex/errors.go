package main

import (
	"errors"
	"fmt"
	"io"
)

// usageError: неверные флаги или конфигурация, код выхода 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// errDiagnostics means the input had errors that were already printed.
var errDiagnostics = errors.New("errors reported")

func exitCode(err error) int {
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, errDiagnostics) {
		return
	}
	fmt.Fprintf(w, "sqlex: %v\n", err)
}
