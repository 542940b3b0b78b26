package failure

import (
	"testing"

	"github.com/liquidgecka/testlib"
)

// An error holder that can be constructed from a generic error.
type exitError struct {
	code int
	err  error
}

func newExitError(err error) *exitError {
	return &exitError{code: 1, err: err}
}

func TestErr(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	fn := func() (int, Failure) {
		return Err[int](Failure("test"))
	}
	v, f := fn()
	T.Equal(v, 0)
	T.Equal(f, Failure("test"))
	T.Equal(f.Error(), "test")

	s, f := Err[string](New("%s", "bad"))
	T.Equal(s, "")
	T.Equal(f.Error(), "bad")
}

func TestErrBoxed(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	fn := func() (*int, error) {
		return ErrBoxed[*int](Failure("test"))
	}
	v, err := fn()
	T.Equal(v, (*int)(nil))
	T.NotEqual(err, nil)
	T.Equal(err.Error(), "test")

	_, err = ErrBoxed[struct{}](Failure(""))
	T.NotEqual(err, nil)
	T.Equal(err.Error(), "")
}

func TestErrBoxedAs(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	v, e := ErrBoxedAs[[]byte](Failure("test"), newExitError)
	T.Equal(v, []byte(nil))
	T.Equal(e.code, 1)
	T.Equal(e.err, error(Failure("test")))
	T.Equal(e.err.Error(), "test")
}
