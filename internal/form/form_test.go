package form

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickgorman/conval/internal/ui"
	"github.com/rickgorman/conval/pkg/console"
	"github.com/rickgorman/conval/pkg/validate"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const registerForm = `
title = "Register"

field "age" {
  prompt     = "Age"
  kind       = "int32"
  conditions = [value > 0, value < 130]
}

field "email" {
  kind = "email"
}

field "favorite" {
  prompt = "Favorite color"
  kind   = "color"
}

field "nick" {
  pattern = "^[a-z]{3,12}$"
}

field "initial" {
  kind       = "char"
  conditions = [upper(value) == value]
}
`

func newReader(t *testing.T, input string) *validate.Reader {
	t.Helper()
	ui.SetNoColor(true)
	orig := ui.Out
	ui.Out = &bytes.Buffer{}
	t.Cleanup(func() { ui.Out = orig })
	return validate.NewReader(console.NewWithIO(strings.NewReader(input), io.Discard))
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(registerForm), "register.hcl")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(f.Title, "Register"))
	assert.Assert(t, is.Len(f.Fields, 5))

	age := f.Fields[0]
	assert.Check(t, is.Equal(age.Label(), "Age"))
	assert.Check(t, is.Equal(age.Kind, validate.Int32))
	assert.Check(t, is.Equal(age.Policy, validate.ObeyAll))
	assert.Check(t, is.Len(age.Conditions, 2))

	assert.Check(t, f.Fields[1].Email)
	assert.Check(t, f.Fields[2].Color)
	assert.Check(t, f.Fields[3].Pattern != nil)
	assert.Check(t, is.Equal(f.Fields[3].Label(), "nick"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no fields", `title = "x"`, "declares no fields"},
		{"unknown kind", `field "a" { kind = "decimal" }`, "unknown kind"},
		{"unknown policy", `field "a" { policy = "most" }`, "unknown policy"},
		{"duplicate field", `
field "a" {}
field "a" {}`, "duplicate field"},
		{"unknown variable", `field "a" {
  kind       = "int32"
  conditions = [other > 1]
}`, "unknown variable"},
		{"pattern on number", `field "a" {
  kind    = "int32"
  pattern = "^1$"
}`, "pattern requires a text field"},
		{"bad pattern", `field "a" { pattern = "(" }`, "invalid pattern"},
		{"conditions on email", `field "a" {
  kind       = "email"
  conditions = [true]
}`, "not supported"},
		{"conditions not a list", `field "a" { conditions = value > 1 }`, "Invalid expression"},
		{"syntax", `field "a" {`, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value validate.Value
		want  bool
	}{
		{"in range", `[value > 0, value < 130]`, validate.Int32Value(30), true},
		{"too large", `[value > 0, value < 130]`, validate.Int32Value(200), false},
		{"float", `[value >= 0.5]`, validate.DoubleValue(0.75), true},
		{"NaN rejects", `[value > 0]`, validate.DoubleValue(math.NaN()), false},
		{"infinity rejects", `[value > 0]`, validate.SingleValue(float32(math.Inf(1))), false},
		{"string length", `[strlen(value) >= 3]`, validate.TextValue("ab"), false},
		{"regex match", `[regex("^[A-Z]", value) != ""]`, validate.TextValue("Zed"), true},
		{"regex miss rejects", `[regex("^[A-Z]", value) != ""]`, validate.TextValue("zed"), false},
		{"type error rejects", `[value > 1]`, validate.TextValue("abc"), false},
		{"non-bool rejects", `[value]`, validate.Int32Value(1), false},
		{"bool value", `[value]`, validate.BoolValue(true), true},
		{"date as text", `[value == "2026-10-16T00:00:00Z"]`, validate.TimeValue(mustTime(t, "2026-10-16T00:00:00Z")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(`field "x" { conditions = `+tt.src+` }`), "test.hcl")
			assert.NilError(t, err)

			got := validate.Evaluate(validate.ObeyAll, tt.value, f.Fields[0].Conditions)
			assert.Check(t, is.Equal(got, tt.want))
		})
	}
}

func TestRun(t *testing.T) {
	f, err := Parse([]byte(registerForm), "register.hcl")
	assert.NilError(t, err)

	input := strings.Join([]string{
		"200", "abc", "30", // age
		"a@b", "ada@example.org", // email
		"purple", "DarkCyan", // color
		"X", "ada", // nick
		"q", "Q", // initial
	}, "\n") + "\n"

	sub, err := Run(newReader(t, input), f)
	assert.NilError(t, err)
	assert.Check(t, is.Len(sub.ID, 26))
	assert.Check(t, is.Equal(sub.Title, "Register"))
	assert.Check(t, is.DeepEqual(sub.Values, map[string]any{
		"age":      int32(30),
		"email":    "ada@example.org",
		"favorite": "DarkCyan",
		"nick":     "ada",
		"initial":  "Q",
	}))
	assert.Check(t, !sub.CompletedAt.IsZero())

	b, err := json.Marshal(sub)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(b), `"age":30`))
}

func TestRunStopsOnEOF(t *testing.T) {
	f, err := Parse([]byte(registerForm), "register.hcl")
	assert.NilError(t, err)

	_, err = Run(newReader(t, "30\n"), f)
	assert.ErrorContains(t, err, "field email")
}

func TestRunRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{"with conditions", `field "ratio" {
  kind       = "double"
  conditions = [value > 0]
}`, 0.5},
		{"without conditions", `field "ratio" { kind = "single" }`, float32(0.5)},
		{"any policy", `field "ratio" {
  kind       = "double"
  policy     = "any"
  conditions = [value > 0, value < 0]
}`, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.src), "ratio.hcl")
			assert.NilError(t, err)

			sub, err := Run(newReader(t, "NaN\nInf\n-Inf\n0.5\n"), f)
			assert.NilError(t, err)
			assert.Check(t, is.Equal(sub.Values["ratio"], tt.want))

			_, err = json.Marshal(sub)
			assert.NilError(t, err)
		})
	}
}

func TestRunExclude(t *testing.T) {
	f, err := Parse([]byte(`field "user" {
  pattern    = "^[a-z]+$"
  exclude    = ["root", "Admin"]
  policy     = "first"
  conditions = [strlen(value) >= 3, strlen(value) > 100]
}`), "user.hcl")
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(f.Fields[0].Exclude, []string{"root", "Admin"}))

	sub, err := Run(newReader(t, "Ada\nroot\nadmin\nal\nada\n"), f)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(sub.Values["user"], "ada"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.hcl")
	assert.NilError(t, os.WriteFile(path, []byte(registerForm), 0644))

	f, err := Load(path)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(f.Path, path))

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorContains(t, err, "failed to parse form file")
}
