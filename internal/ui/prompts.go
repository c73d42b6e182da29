package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rickgorman/conval/pkg/validate"
)

// promptIndent matches the two-space indent of every other ui line.
const promptIndent = "  "

// PromptLabel prints "  label: " without a newline and returns the
// column where input starts.
func PromptLabel(label string) int {
	text := promptIndent + label + ": "
	_, _ = fmt.Fprint(Out, promptIndent+Bold(label)+": ")
	return runewidth.StringWidth(text)
}

// AskYesNo prompts with a yes/no question until y, yes, n or no is typed.
func AskYesNo(r *validate.Reader, prompt string) (bool, error) {
	col := PromptLabel(prompt + " [y/n]")

	v, err := r.ReadWithConditions(true, validate.Text, col, validate.OneOf("y", "yes", "n", "no"))
	if err != nil {
		return false, err
	}

	response := strings.ToLower(strings.TrimSpace(v.String()))
	return response == "y" || response == "yes", nil
}

// AskChoice prompts for a number between 1 and maxChoice.
// Returns the selected index (0-based).
func AskChoice(r *validate.Reader, prompt string, maxChoice int) (int, error) {
	col := PromptLabel(fmt.Sprintf("%s [1-%d]", prompt, maxChoice))

	v, err := r.ReadWithConditions(true, validate.Int32, col, validate.Between(1, float64(maxChoice)))
	if err != nil {
		return -1, err
	}
	return int(v.Int()) - 1, nil // Convert to 0-based
}

// AskString prompts for a non-blank string.
func AskString(r *validate.Reader, prompt string) (string, error) {
	col := PromptLabel(prompt)

	v, err := r.ReadWithConditions(true, validate.Text, col)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v.String()), nil
}
