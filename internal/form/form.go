package form

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rickgorman/conval/pkg/validate"
)

// Pseudo-kinds handled by dedicated readers.
const (
	kindEmail = "email"
	kindColor = "color"
)

// Form is a loaded, validated form definition.
type Form struct {
	Path   string
	Title  string
	Fields []*Field
}

// Field is one prompt of a form.
type Field struct {
	Name       string
	Prompt     string
	Kind       validate.Kind
	Email      bool
	Color      bool
	Policy     validate.Policy
	Pattern    *regexp.Regexp
	Exclude    []string
	Conditions []validate.Condition

	// checks always apply, whatever the policy.
	checks []validate.Condition
}

// Label returns the text printed before the input.
func (f *Field) Label() string {
	if f.Prompt != "" {
		return f.Prompt
	}
	return f.Name
}

// hclFormFile represents the top-level structure of a form file for decoding.
type hclFormFile struct {
	Title  string      `hcl:"title,optional"`
	Fields []*hclField `hcl:"field,block"`
}

type hclField struct {
	Name       string         `hcl:"name,label"`
	Prompt     string         `hcl:"prompt,optional"`
	Kind       string         `hcl:"kind,optional"`
	Policy     string         `hcl:"policy,optional"`
	Pattern    string         `hcl:"pattern,optional"`
	Exclude    []string       `hcl:"exclude,optional"`
	Conditions hcl.Expression `hcl:"conditions,optional"`
}

// Load parses and validates the form file at path.
func Load(path string) (*Form, error) {
	slog.Debug("Loading form.", "path", path)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse form file %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse parses a form from source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Form, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse form %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, path string) (*Form, error) {
	var parsed hclFormFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode form %s: %w", path, diags)
	}
	if len(parsed.Fields) == 0 {
		return nil, fmt.Errorf("form %s declares no fields", path)
	}

	form := &Form{Path: path, Title: parsed.Title}
	seen := make(map[string]bool, len(parsed.Fields))
	for _, hf := range parsed.Fields {
		if seen[hf.Name] {
			return nil, fmt.Errorf("form %s: duplicate field %q", path, hf.Name)
		}
		seen[hf.Name] = true

		field, err := newField(hf)
		if err != nil {
			return nil, fmt.Errorf("form %s: field %q: %w", path, hf.Name, err)
		}
		form.Fields = append(form.Fields, field)
	}

	slog.Debug("Loaded form.", "path", path, "fields", len(form.Fields))
	return form, nil
}

func newField(hf *hclField) (*Field, error) {
	field := &Field{Name: hf.Name, Prompt: hf.Prompt}

	switch kind := strings.ToLower(strings.TrimSpace(hf.Kind)); kind {
	case kindEmail:
		field.Email = true
	case kindColor:
		field.Color = true
	case "":
		field.Kind = validate.Text
	default:
		k, err := validate.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		field.Kind = k
	}

	policy, err := validate.ParsePolicy(hf.Policy)
	if err != nil {
		return nil, err
	}
	field.Policy = policy

	exprs, diags := conditionExprs(hf.Conditions)
	if diags.HasErrors() {
		return nil, diags
	}

	if (len(exprs) > 0 || len(hf.Exclude) > 0) && (field.Email || field.Color) {
		return nil, fmt.Errorf("conditions are not supported for %s fields", hf.Kind)
	}

	field.checks = []validate.Condition{validate.Finite()}
	if hf.Pattern != "" {
		if field.Email || field.Color || field.Kind != validate.Text {
			return nil, fmt.Errorf("pattern requires a text field")
		}
		re, err := regexp.Compile(hf.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		field.Pattern = re
		field.checks = append(field.checks, validate.MatchPattern(re))
	}
	if len(hf.Exclude) > 0 {
		field.Exclude = hf.Exclude
		field.checks = append(field.checks, validate.Not(validate.OneOf(hf.Exclude...)))
	}

	for _, expr := range exprs {
		cond, err := compileCondition(expr)
		if err != nil {
			return nil, err
		}
		field.Conditions = append(field.Conditions, cond)
	}

	return field, nil
}
