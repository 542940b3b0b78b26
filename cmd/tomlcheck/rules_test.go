package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liquidgecka/testlib"
	"github.com/pkg/errors"

	"github.com/liquidgecka/failure"
)

func writeFile(T *testlib.T, name, contents string) string {
	file := filepath.Join(T.TempDir(), name)
	T.ExpectSuccess(os.WriteFile(file, []byte(contents), 0644))
	return file
}

func TestLoadRules(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	file := writeFile(T, "rules.toml", strings.Join([]string{
		`[[require]]`,
		`key = "server.addr"`,
		`type = "string"`,
		``,
		`[[require]]`,
		`key = "machine_id"`,
	}, "\n"))
	reqs, err := loadRules(file)
	T.ExpectSuccess(err)
	T.Equal(reqs, []requirement{
		{key: "server.addr", kind: "string"},
		{key: "machine_id"},
	})
}

func TestLoadRules_Invalid(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	// Test 1: Every problem is reported at once, as a Failure.
	file := writeFile(T, "rules.toml", strings.Join([]string{
		`[[require]]`,
		`type = "string"`,
		``,
		`[[require]]`,
		`key = ""`,
		`type = "color"`,
	}, "\n"))
	_, err := loadRules(file)
	f, ok := failure.As(err)
	T.Equal(ok, true)
	T.Equal(f.Error(), strings.Join([]string{
		file + ": require[0].key is a required field.",
		file + ": require[1].key can not be empty.",
		file + ": require[1].type must be one of " + kindList() + ".",
	}, "\n"))

	// Test 2: No rules at all.
	file = writeFile(T, "empty.toml", "")
	_, err = loadRules(file)
	T.Equal(err, error(failure.Failure(
		file+": at least one require rule must be defined.")))

	// Test 3: Unknown fields are rejected by strict decoding.
	file = writeFile(T, "unknown.toml", strings.Join([]string{
		`[[require]]`,
		`key = "a"`,
		`color = "red"`,
	}, "\n"))
	_, err = loadRules(file)
	T.ExpectErrorMessage(err, file+": ")
	_, ok = failure.As(err)
	T.Equal(ok, false)

	// Test 4: Missing file.
	_, err = loadRules(filepath.Join(T.TempDir(), "missing.toml"))
	T.ExpectErrorMessage(err, "Unable to read rules: ")
	T.Equal(os.IsNotExist(errors.Cause(err)), true)
}

func TestRequirement_String(t *testing.T) {
	T := testlib.NewT(t)
	defer T.Finish()

	T.Equal(requirement{key: "a"}.String(), "a")
	T.Equal(requirement{key: "a", kind: "table"}.String(), "a:table")
}
