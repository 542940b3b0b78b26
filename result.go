package failure

// Returns the zero value of T and the Failure itself as the error. Use this
// in functions that return (T, Failure).
func Err[T any](f Failure) (T, Failure) {
	var zero T
	return zero, f
}

// Returns the zero value of T and the Failure as a generic error.
func ErrBoxed[T any](f Failure) (T, error) {
	var zero T
	return zero, f.Boxed()
}

// Like ErrBoxed, but the generic error is passed through from so that the
// caller can return any error holder that can be built from an error.
func ErrBoxedAs[T any, E any](f Failure, from func(error) E) (T, E) {
	var zero T
	return zero, from(f.Boxed())
}
