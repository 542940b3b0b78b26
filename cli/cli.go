// Package cli runs the body of a command line program and turns the error
// it returns into output on stderr and an exit status.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/liquidgecka/failure"
	"github.com/liquidgecka/failure/internal/sloghelper"
)

const (
	// Returned when the program body returned nil.
	ExitSuccess = 0

	// Returned when the program body returned any error.
	ExitFailure = 1
)

// Replaced in tests.
var exit = os.Exit

type Runner struct {
	// Where error messages are written. Defaults to os.Stderr.
	Stderr io.Writer

	// Receives a debug record for every error returned. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger

	// When set errors are printed with %+v so that errors created with
	// github.com/pkg/errors include their stack trace.
	Debug bool
}

// Calls fn and returns the exit status the process should use. A nil
// error is silent. Any other error has its message written to Stderr,
// followed by a newline, with no decoration.
func (r *Runner) Run(ctx context.Context, fn func(context.Context) error) int {
	err := fn(ctx)
	if err == nil {
		return ExitSuccess
	}

	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	log := r.Logger
	if log == nil {
		log = sloghelper.Discard()
	}

	_, isFailure := failure.As(err)
	log.LogAttrs(
		ctx,
		slog.LevelDebug,
		"Program exited with an error.",
		sloghelper.Error("error", err),
		sloghelper.Bool("failure", isFailure),
		sloghelper.Error("cause", errors.Cause(err)))

	if r.Debug {
		fmt.Fprintf(stderr, "%+v\n", err)
	} else {
		fmt.Fprintln(stderr, err.Error())
	}
	return ExitFailure
}

// Runs fn with a default Runner and exits the process with the result.
func Main(fn func(context.Context) error) {
	r := Runner{}
	exit(r.Run(context.Background(), fn))
}
