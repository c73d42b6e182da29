package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ncruces/go-strftime"
)

// DateStyles adjusts how ParseExact treats whitespace and time zones.
type DateStyles uint

const (
	DateStylesNone DateStyles = 0

	// AllowLeadingWhite ignores leading whitespace.
	AllowLeadingWhite DateStyles = 1 << iota
	// AllowTrailingWhite ignores trailing whitespace.
	AllowTrailingWhite
	// AssumeLocal interprets times without a zone as local. This is the default.
	AssumeLocal
	// AssumeUniversal interprets times without a zone as UTC.
	AssumeUniversal
	// AdjustToUniversal converts the result to UTC.
	AdjustToUniversal

	// AllowWhiteSpaces ignores leading and trailing whitespace.
	AllowWhiteSpaces = AllowLeadingWhite | AllowTrailingWhite
)

var (
	// ErrEmptyFormat is returned when no date format is given.
	ErrEmptyFormat = errors.New("empty date format")
	// ErrConflictingStyles is returned for AssumeLocal|AssumeUniversal.
	ErrConflictingStyles = errors.New("AssumeLocal and AssumeUniversal are mutually exclusive")
)

var styleNames = map[string]DateStyles{
	"none":               DateStylesNone,
	"allowleadingwhite":  AllowLeadingWhite,
	"allowtrailingwhite": AllowTrailingWhite,
	"allowwhitespaces":   AllowWhiteSpaces,
	"assumelocal":        AssumeLocal,
	"assumeuniversal":    AssumeUniversal,
	"adjusttouniversal":  AdjustToUniversal,
}

// ParseDateStyles combines style names such as "AllowWhiteSpaces" or
// "assume-universal", ignoring case, hyphens and underscores.
func ParseDateStyles(names ...string) (DateStyles, error) {
	var styles DateStyles
	for _, name := range names {
		key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
		s, ok := styleNames[key]
		if !ok {
			return 0, fmt.Errorf("unknown date style %q", name)
		}
		styles |= s
	}
	return styles, nil
}

// CheckDateFormat reports format and style errors that would make every
// ParseExact call fail regardless of input.
func CheckDateFormat(format string, styles DateStyles) error {
	if styles&AssumeLocal != 0 && styles&AssumeUniversal != 0 {
		return ErrConflictingStyles
	}
	_, err := layoutFor(format)
	return err
}

// ParseExact parses text against exactly one format.
func ParseExact(text, format string, styles DateStyles) (time.Time, error) {
	if err := CheckDateFormat(format, styles); err != nil {
		return time.Time{}, err
	}
	layout, _ := layoutFor(format)

	if styles&AllowLeadingWhite != 0 {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	if styles&AllowTrailingWhite != 0 {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}

	loc := time.Local
	if styles&AssumeUniversal != 0 {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(layout, text, loc)
	if err != nil {
		return time.Time{}, err
	}

	if styles&AdjustToUniversal != 0 {
		t = t.UTC()
	}
	return t, nil
}

// layoutFor returns a Go layout for format, converting strftime formats.
func layoutFor(format string) (string, error) {
	if format == "" {
		return "", ErrEmptyFormat
	}
	if !strings.Contains(format, "%") {
		return format, nil
	}
	layout, err := strftime.Layout(format)
	if err != nil {
		return "", fmt.Errorf("convert strftime format %q: %w", format, err)
	}
	return layout, nil
}
