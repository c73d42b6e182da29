package form

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rickgorman/conval/internal/ui"
	"github.com/rickgorman/conval/pkg/validate"
)

// Submission is the result of running a form to completion.
type Submission struct {
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Values      map[string]any `json:"values"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Run prompts for every field in order and collects the answers.
func Run(r *validate.Reader, f *Form) (*Submission, error) {
	sub := &Submission{
		ID:     ulid.Make().String(),
		Title:  f.Title,
		Values: make(map[string]any, len(f.Fields)),
	}

	if f.Title != "" {
		ui.Header(f.Title)
	}

	for _, field := range f.Fields {
		col := ui.PromptLabel(field.Label())
		v, err := field.read(r, col)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		sub.Values[field.Name] = v
	}

	if f.Title != "" {
		ui.Footer()
	}

	sub.CompletedAt = time.Now().UTC()
	return sub, nil
}

// accepts applies the field's fixed checks, then its conditions under
// its policy.
func (f *Field) accepts(v validate.Value) bool {
	return validate.Evaluate(validate.ObeyAll, v, f.checks) &&
		validate.Evaluate(f.Policy, v, f.Conditions)
}

// read reads one answer, returning a JSON-friendly value.
func (f *Field) read(r *validate.Reader, col int) (any, error) {
	switch {
	case f.Email:
		return r.ReadEmail()
	case f.Color:
		c, err := r.ReadColor()
		if err != nil {
			return nil, err
		}
		return c.String(), nil
	}

	v, err := r.ReadWithConditions(true, f.Kind, col, f.accepts)
	if err != nil {
		return nil, err
	}
	if v.Kind() == validate.Char {
		return string(v.Rune()), nil
	}
	return v.Any(), nil
}
