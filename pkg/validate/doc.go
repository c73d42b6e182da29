// Package validate reads typed, validated values from a terminal.
//
// Every reader follows the same pattern: read one line, try to convert or
// validate it, and on failure erase the offending line and read again.
// Nothing is ever reported back to the caller as a validation error; the
// caller either gets a valid value or keeps blocking until one is typed.
// The only errors returned are I/O failures from the terminal (for example
// io.EOF when stdin is closed) and ErrAttemptsExhausted when an attempt
// limit was configured.
//
// The terminal is injected through the Terminal interface so readers can
// be driven by a real console (see pkg/console) or a scripted fake in
// tests.
//
// Example usage:
//
//	r := validate.NewReader(console.New())
//
//	fmt.Print("Age: ")
//	age, err := r.ReadWithConditions(true, validate.Int32, 5,
//	    validate.Min(0), validate.Max(130))
//
//	fmt.Print("Email: ")
//	email, err := r.ReadEmail()
//
// Supported kinds:
//   - Text:     any non-blank line, unchanged
//   - Int16, Int32, Int64, Byte: base-10 integers of that width
//   - Double, Single: floating point
//   - Boolean:  "true" or "false", any case
//   - Char:     exactly one rune
//   - DateTime: free-form date/time in the local zone
//
// Erase-and-reread:
//
// When a line is rejected the reader moves the cursor one row up to the
// anchor column, overwrites the rejected text with spaces and moves back,
// so the prompt reappears blank. The anchor column is captured once per
// prompt; the row is always "one above the current row", which assumes a
// rejected line never wraps.
package validate
