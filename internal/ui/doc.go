// Package ui provides terminal output formatting and prompts for conval.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//   - Prompts (yes/no, numbered choice, string) that re-ask in place
//     until the answer is valid
//
// All output goes to ui.Out (defaults to os.Stderr) so results printed on
// stdout can be captured by scripts.
//
// Example usage:
//
//	ui.Header("Register")
//	r := validate.NewReader(console.New())
//	if ok, _ := ui.AskYesNo(r, "Continue?"); ok {
//	    choice, _ := ui.AskChoice(r, "Select option", 3)
//	}
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
