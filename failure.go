package failure

import (
	"errors"
	"log/slog"
	"strconv"
)

// A Failure is a human readable message explaining why the program can not
// continue. It is the whole error, there is no code or cause attached to it.
//
// New, Errorf and Bail save typing fmt.Sprintf when building one.
type Failure string

var _ error = Failure("")

// Returns the message exactly as it was given.
func (f Failure) Error() string {
	return string(f)
}

// Returns the message exactly as it was given.
func (f Failure) String() string {
	return string(f)
}

// Returns the message as a quoted Go string literal. This is what %#v
// prints.
func (f Failure) GoString() string {
	return strconv.Quote(string(f))
}

// Renders the Failure as its message when logged with log/slog.
func (f Failure) LogValue() slog.Value {
	return slog.StringValue(string(f))
}

// Returns the Failure as a generic error value.
func (f Failure) Boxed() error {
	return f
}

// Walks the chain of wrapped errors looking for a Failure.
func As(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return "", false
}
