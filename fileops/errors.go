package fileops

import (
	"errors"
	"fmt"
)

// ErrUsage is the parent of every error caused by bad command input.
// Usage errors are reported before any file is touched.
var ErrUsage = errors.New("usage error")

// Sentinel usage errors. All of them match ErrUsage with errors.Is.
var (
	ErrInvalidBits      = usageError("N for xorN must be between 2 and 6")
	ErrInvalidCopies    = usageError("N for copyN must be between 1 and 15")
	ErrInvalidMask      = usageError("invalid hexadecimal mask")
	ErrEmptyPattern     = usageError("empty search string provided")
	ErrUnknownOperation = usageError("unknown or absent flag")
	ErrMissingArgument  = usageError("not enough arguments")
)

type usageErr struct {
	msg string
}

func usageError(msg string) error {
	return &usageErr{msg: msg}
}

func (e *usageErr) Error() string { return e.msg }

func (e *usageErr) Unwrap() error { return ErrUsage }

// Usagef wraps a usage sentinel with extra detail.
func Usagef(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
