package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// ErrAttemptsExhausted is returned when a reader configured with
// WithMaxAttempts rejects that many lines in a row.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Rejection reasons, used in debug logs.
const (
	reasonBlank      = "blank"
	reasonConversion = "conversion"
	reasonCondition  = "condition"
	reasonPattern    = "pattern"
	reasonColor      = "unknown color"
)

// Reader reads validated values from a Terminal.
type Reader struct {
	term        Terminal
	logger      *slog.Logger
	maxAttempts int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for rejected-attempt diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxAttempts bounds the number of rejected lines per prompt.
// Zero or less means unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Reader) { r.maxAttempts = n }
}

// NewReader creates a Reader on term.
func NewReader(term Terminal, opts ...Option) *Reader {
	r := &Reader{
		term:   term,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read blocks until a line converts to kind and is not blank.
func (r *Reader) Read(kind Kind) (Value, error) {
	var result Value
	_, err := r.loop(kind.String(), r.anchor(), func(line string) string {
		v, ok := Parse(line, kind)
		switch {
		case !ok:
			return reasonConversion
		case IsBlank(v):
			return reasonBlank
		}
		result = v
		return ""
	})
	if err != nil {
		return Value{}, err
	}
	return result, nil
}

// ReadDateTime parses text against one exact format. It does not read
// from the terminal and makes a single attempt. On failure the line above
// the cursor is erased and the zero time is returned.
//
// format is a Go layout ("02/01/2006"), or a strftime format when it
// contains '%' ("%d/%m/%Y").
func (r *Reader) ReadDateTime(text, format string, styles DateStyles) (time.Time, bool) {
	anchor := r.anchor()

	t, err := ParseExact(text, format, styles)
	if err != nil {
		r.logger.Debug("Rejected date.", "text", text, "format", format, "error", err)
		r.erase(anchor, text)
		return time.Time{}, false
	}
	return t, true
}

// ReadColor blocks until a line names one of the console colors.
func (r *Reader) ReadColor() (Color, error) {
	var result Color
	_, err := r.loop("color", r.anchor(), func(line string) string {
		c, ok := ParseColor(line)
		if !ok {
			if strings.TrimSpace(line) == "" {
				return reasonBlank
			}
			return reasonColor
		}
		result = c
		return ""
	})
	if err != nil {
		return Black, err
	}
	return result, nil
}

// ReadWithConditions reads a value of kind that also satisfies conditions.
// With obeyAll every condition must accept; without it only the first
// condition is consulted (see FirstDecides). Rejected lines are erased at
// cursorColumn rather than at a captured anchor, so fields of a form may
// start at different columns. Lines that fail conversion are erased too.
func (r *Reader) ReadWithConditions(obeyAll bool, kind Kind, cursorColumn int, conditions ...Condition) (Value, error) {
	policy := FirstDecides
	if obeyAll {
		policy = ObeyAll
	}
	return r.ReadWithPolicy(policy, kind, cursorColumn, conditions...)
}

// ReadWithPolicy is ReadWithConditions with an explicit Policy.
func (r *Reader) ReadWithPolicy(policy Policy, kind Kind, cursorColumn int, conditions ...Condition) (Value, error) {
	var result Value
	_, err := r.loop(kind.String(), cursorColumn, func(line string) string {
		v, ok := Parse(line, kind)
		switch {
		case IsBlank(v):
			return reasonBlank
		case !ok || v.Kind() != kind:
			return reasonConversion
		case !Evaluate(policy, v, conditions):
			return reasonCondition
		}
		result = v
		return ""
	})
	if err != nil {
		return Value{}, err
	}
	return result, nil
}

// ReadEmail blocks until a line looks like an email address.
func (r *Reader) ReadEmail() (string, error) {
	return r.ReadMatch(emailPattern)
}

// ReadMatch blocks until a non-blank line matches re. The whole line is
// matched as-is; anchor the pattern to reject partial matches.
func (r *Reader) ReadMatch(re *regexp.Regexp) (string, error) {
	return r.loop("pattern", r.anchor(), func(line string) string {
		switch {
		case strings.TrimSpace(line) == "":
			return reasonBlank
		case !re.MatchString(line):
			return reasonPattern
		}
		return ""
	})
}

// loop reads lines until check returns no rejection reason, erasing each
// rejected line at col.
func (r *Reader) loop(what string, col int, check func(line string) string) (string, error) {
	for attempt := 1; ; attempt++ {
		line, err := r.term.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", what, err)
		}

		reason := check(line)
		if reason == "" {
			return line, nil
		}

		r.logger.Debug("Rejected input.", "kind", what, "reason", reason, "attempt", attempt)
		r.erase(col, line)

		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return "", fmt.Errorf("read %s: %w after %d attempts", what, ErrAttemptsExhausted, attempt)
		}
	}
}

// anchor captures the column input starts at. Falls back to 0 when the
// terminal cannot report its cursor.
func (r *Reader) anchor() int {
	col, _, err := r.term.CursorPosition()
	if err != nil {
		r.logger.Debug("Cursor position unavailable.", "error", err)
		return 0
	}
	return col
}

// erase blanks text on the row above the cursor, starting at col, and
// leaves the cursor at col on that row. Terminal errors are ignored.
func (r *Reader) erase(col int, text string) {
	_, row, err := r.term.CursorPosition()
	if err != nil {
		r.logger.Debug("Skipping erase.", "error", err)
		return
	}

	row--
	if row < 0 {
		row = 0
	}

	if err := r.term.SetCursorPosition(col, row); err != nil {
		r.logger.Debug("Skipping erase.", "error", err)
		return
	}
	if width := runewidth.StringWidth(text); width > 0 {
		if err := r.term.Write(strings.Repeat(" ", width)); err != nil {
			r.logger.Debug("Erase write failed.", "error", err)
		}
	}
	if err := r.term.SetCursorPosition(col, row); err != nil {
		r.logger.Debug("Erase restore failed.", "error", err)
	}
}
