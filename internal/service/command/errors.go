package command

import (
	"errors"
	"fmt"
)

// ErrUsage matches any error produced for a command called with missing
// arguments.
var ErrUsage = errors.New("invalid usage")

type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "Usage: " + e.usage
}

func (e *usageError) Is(target error) bool {
	return target == ErrUsage
}

// opError carries the failed action and the OS error behind it. Its text is
// the user-facing result, e.g. "Error reading file: open x: no such file".
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string {
	return fmt.Sprintf("Error %s: %v", e.op, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}

func failure(op string, err error) error {
	return &opError{op: op, err: err}
}
