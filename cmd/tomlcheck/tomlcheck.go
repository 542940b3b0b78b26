package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/liquidgecka/failure/cli"
	"github.com/liquidgecka/failure/internal/sloghelper"
)

// Expected to be set via -ldflags/-X by the linker
var BuildVersion string
var BuildTimeEpoch string

func Version() string {
	if BuildVersion == "" {
		BuildVersion = "Unknown"
		BuildTimeEpoch = "unknown"
	}
	return fmt.Sprintf(
		"tomlcheck: %s ts=%s go=%s\n",
		BuildVersion,
		BuildTimeEpoch,
		runtime.Version())
}

type options struct {
	// Display the build version and exit.
	version bool

	// Enable debug logging and stack traces on errors.
	debug bool

	// If set logs are appended to this file.
	logFile string

	// A TOML file of [[require]] rules.
	rulesFile string

	// Rules given on the command line with -require.
	require requireFlag

	// The TOML documents to check.
	files []string
}

// A repeatable "key[:type]" flag.
type requireFlag []requirement

func (r *requireFlag) String() string {
	if r == nil {
		return ""
	}
	strs := make([]string, len(*r))
	for i, req := range *r {
		strs[i] = req.String()
	}
	return strings.Join(strs, ",")
}

func (r *requireFlag) Set(v string) error {
	key, kind, _ := strings.Cut(v, ":")
	if key == "" {
		return fmt.Errorf("a key is required")
	} else if !validKinds[kind] {
		return fmt.Errorf("unknown type %q", kind)
	}
	*r = append(*r, requirement{key: key, kind: kind})
	return nil
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("tomlcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: tomlcheck [flags] file.toml...\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(
		&opts.version,
		"V",
		false,
		"Display the build version and then exit.")
	fs.BoolVar(
		&opts.debug,
		"debug",
		false,
		"Enable debug logging.")
	fs.StringVar(
		&opts.logFile,
		"log",
		"",
		"Append logs to this file.")
	fs.StringVar(
		&opts.rulesFile,
		"rules",
		"",
		"Path to a TOML file of [[require]] rules.")
	fs.Var(
		&opts.require,
		"require",
		"A key that must exist, optionally with a type (key:type). "+
			"May be repeated.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.files = fs.Args()
	return opts, nil
}

// Builds the logger described by the options. The returned function
// flushes and closes any log file.
func setupLogging(opts *options, stderr io.Writer) (*slog.Logger, func(), error) {
	leveler := &sloghelper.Leveler{}
	leveler.SetDebug(opts.debug)
	handlerOpts := &slog.HandlerOptions{Level: leveler}
	switch {
	case opts.logFile != "":
		lf, err := sloghelper.OpenLogFile(opts.logFile)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := lf.Close(); err != nil {
				fmt.Fprintf(stderr, "%s\n", err.Error())
			}
		}
		return slog.New(slog.NewTextHandler(lf, handlerOpts)), closer, nil
	case opts.debug:
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), func() {}, nil
	default:
		return sloghelper.Discard(), func() {}, nil
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(cli.ExitSuccess)
	} else if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Print(Version())
		os.Exit(cli.ExitSuccess)
	}

	log, closeLog, err := setupLogging(opts, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(cli.ExitFailure)
	}

	runner := cli.Runner{
		Logger: log,
		Debug:  opts.debug,
	}
	code := runner.Run(context.Background(), func(ctx context.Context) error {
		return check(ctx, log, opts, os.Stdout)
	})
	closeLog()
	os.Exit(code)
}
