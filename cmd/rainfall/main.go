package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Report written
	ExitIOFailure = 1 // Reading input or writing the report failed
	ExitError     = 2 // Usage or other runtime error
)

// IOError indicates that the input stream could not be read or the
// report could not be written.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return ExitSuccess
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ExitIOFailure
	}

	// All other errors are usage/runtime errors
	return ExitError
}
