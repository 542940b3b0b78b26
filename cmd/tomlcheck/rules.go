package main

import (
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/liquidgecka/failure"
)

// The value types a requirement can ask for. An empty type accepts any
// value.
var validKinds = map[string]bool{
	"":         true,
	"array":    true,
	"boolean":  true,
	"datetime": true,
	"float":    true,
	"integer":  true,
	"string":   true,
	"table":    true,
}

// A single checked key.
type requirement struct {
	key  string
	kind string
}

func (r requirement) String() string {
	if r.kind == "" {
		return r.key
	}
	return r.key + ":" + r.kind
}

type rulesFile struct {
	Require []rule `toml:"require"`
}

type rule struct {
	// The dotted path of the key that must be present.
	Key *string `toml:"key"`

	// The type the value must have, see validKinds.
	Type *string `toml:"type"`
}

func (r *rule) validate(name string) []string {
	var errors []string

	// Key
	if r.Key == nil {
		errors = append(errors, name+".key is a required field.")
	} else if *r.Key == "" {
		errors = append(errors, name+".key can not be empty.")
	}

	// Type
	if r.Type != nil && !validKinds[*r.Type] {
		errors = append(
			errors,
			name+".type must be one of "+kindList()+".")
	}

	return errors
}

func (r *rule) requirement() requirement {
	req := requirement{key: *r.Key}
	if r.Type != nil {
		req.kind = *r.Type
	}
	return req
}

// Reads a rules file, returning every valid requirement. Problems with the
// contents of the file are returned together as a single Failure.
func loadRules(filename string) ([]requirement, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to read rules")
	}
	defer fd.Close()

	rf := rulesFile{}
	decoder := toml.NewDecoder(fd).Strict(true)
	if err := decoder.Decode(&rf); err != nil {
		return nil, errors.WithMessage(err, filename)
	}

	var problems []string
	if len(rf.Require) == 0 {
		problems = append(problems, filename+": at least one require rule must be defined.")
	}
	for i := range rf.Require {
		for _, p := range rf.Require[i].validate(requireName(i)) {
			problems = append(problems, filename+": "+p)
		}
	}
	if problems != nil {
		return nil, failure.New("%s", strings.Join(problems, "\n"))
	}

	reqs := make([]requirement, len(rf.Require))
	for i := range rf.Require {
		reqs[i] = rf.Require[i].requirement()
	}
	return reqs, nil
}

func requireName(i int) string {
	return "require[" + strconv.Itoa(i) + "]"
}

func kindList() string {
	return "array, boolean, datetime, float, integer, string or table"
}
