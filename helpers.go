package failure

import (
	"fmt"
)

// Builds a Failure from a fmt format string and its arguments. Messages
// that are not format strings should use Failure("...") instead, since any
// % in them is read as a verb.
func New(format string, args ...interface{}) Failure {
	return Failure(fmt.Sprintf(format, args...))
}

// Builds a Failure from a fmt format string and returns it as an error.
func Errorf(format string, args ...interface{}) error {
	return New(format, args...).Boxed()
}

// Builds a Failure and returns it as a failed (T, error) pair. As with New
// the message is a format string; use ErrBoxed[T](Failure("...")) for
// literal text. Intended to be returned directly:
//
//	if len(args) == 0 {
//		return failure.Bail[string]("no files given")
//	}
func Bail[T any](format string, args ...interface{}) (T, error) {
	return ErrBoxed[T](New(format, args...))
}
