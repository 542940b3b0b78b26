// Package failure provides Failure, a plain string error for command line
// tools that just want to stop with a message.
//
// This package should not be used in libraries. Code consumed by other
// programs should return specific error types so that callers can handle
// them.
//
// Go has no macros, so returning early with a formatted message is a
// single return statement:
//
//	func run() (int, error) {
//		result := "bad"
//
//		// These two lines are the same.
//		return failure.Bail[int]("something %s happened", result)
//		return failure.ErrBoxed[int](failure.New("something %s happened", result))
//
//		// For functions that only return an error.
//		return 0, failure.Errorf("something %s happened", result)
//		return 0, failure.New("something %s happened", result).Boxed()
//	}
//
// The cli sub package prints a Failure that reaches main and exits with a
// non zero status.
package failure
