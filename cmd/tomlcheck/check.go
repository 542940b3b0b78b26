package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml"

	"github.com/liquidgecka/failure"
	"github.com/liquidgecka/failure/internal/sloghelper"
)

// Gathers the requirements from the rules file and the command line.
func (o *options) requirements() ([]requirement, error) {
	var reqs []requirement
	if o.rulesFile != "" {
		loaded, err := loadRules(o.rulesFile)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, loaded...)
	}
	reqs = append(reqs, o.require...)
	return reqs, nil
}

// Checks every file against the configured requirements. Files that pass
// are reported on stdout. Every problem in every file is returned as one
// line of a single Failure.
func check(ctx context.Context, log *slog.Logger, opts *options, stdout io.Writer) error {
	if len(opts.files) == 0 {
		return failure.Errorf("no files to check, see -help for usage")
	}
	reqs, err := opts.requirements()
	if err != nil {
		return err
	} else if len(reqs) == 0 {
		return failure.Errorf("no rules given, use -rules or -require")
	}

	var problems []string
	for _, file := range opts.files {
		tree, err := toml.LoadFile(file)
		if err != nil {
			problems = append(problems, file+": "+strings.TrimSpace(err.Error()))
			continue
		}
		found := checkTree(tree, reqs)
		log.LogAttrs(
			ctx,
			slog.LevelDebug,
			"Checked file.",
			sloghelper.String("file", file),
			sloghelper.Int("rules", len(reqs)),
			sloghelper.Int("problems", len(found)))
		if len(found) == 0 {
			fmt.Fprintf(stdout, "%s: ok\n", file)
		}
		for _, p := range found {
			problems = append(problems, file+": "+p)
		}
	}
	if problems != nil {
		return failure.New("%s", strings.Join(problems, "\n"))
	}
	return nil
}

// Returns a description of each requirement the tree does not satisfy.
func checkTree(tree *toml.Tree, reqs []requirement) []string {
	var problems []string
	for _, req := range reqs {
		if !tree.Has(req.key) {
			problems = append(problems, req.key+" is missing")
			continue
		}
		if req.kind == "" {
			continue
		}
		if have := kindOf(tree.Get(req.key)); have != req.kind {
			problems = append(
				problems,
				fmt.Sprintf("%s is %s, expected %s", req.key, have, req.kind))
		}
	}
	return problems
}

// Maps a value returned by toml.Tree.Get() to its TOML type name.
func kindOf(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case int64, uint64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time, toml.LocalDate, toml.LocalDateTime, toml.LocalTime:
		return "datetime"
	case *toml.Tree:
		return "table"
	case []interface{}, []*toml.Tree:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
