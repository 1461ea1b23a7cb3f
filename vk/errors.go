package vk

import (
	"github.com/cockroachdb/errors"
)

// ErrEntryPointMissing is returned when an operation needs an entry point that the dispatch
// table could not resolve
var ErrEntryPointMissing = errors.New("entry point not resolved in dispatch table")

// Error is the single failure type for native calls. It carries the status code that the
// driver returned.
type Error struct {
	result Result
}

// NewError builds an Error from a status code. The status must not be VKSuccess.
func NewError(result Result) *Error {
	return &Error{result: result}
}

// Result returns the native status code
func (e *Error) Result() Result {
	return e.result
}

func (e *Error) Error() string {
	return ToString(e.result)
}

// Check returns an Error unless result is exactly VKSuccess
func Check(result Result) error {
	if result != VKSuccess {
		return errors.WithStack(NewError(result))
	}
	return nil
}

// Filter returns an Error only when result is a hard error (negative). Informational codes
// such as VKTimeout or VKSuboptimalKHR are returned unchanged with a nil error.
func Filter(result Result) (Result, error) {
	if result < 0 {
		return result, errors.WithStack(NewError(result))
	}
	return result, nil
}

// ResultOf extracts the native status code from an error chain
func ResultOf(err error) (Result, bool) {
	var vkErr *Error
	if errors.As(err, &vkErr) {
		return vkErr.result, true
	}
	return VKSuccess, false
}

func missingEntryPoint(name string) error {
	return errors.Wrapf(ErrEntryPointMissing, "%s", name)
}
