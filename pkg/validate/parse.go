package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

type parseFunc func(s string) (Value, bool)

// parsers holds one conversion per kind. Text is handled by Parse
// directly since it is the only kind that sees the untrimmed line.
var parsers = map[Kind]parseFunc{
	Int16: func(s string) (Value, bool) {
		n, err := strconv.ParseInt(s, 10, 16)
		return Int16Value(int16(n)), err == nil
	},
	Int32: func(s string) (Value, bool) {
		n, err := strconv.ParseInt(s, 10, 32)
		return Int32Value(int32(n)), err == nil
	},
	Int64: func(s string) (Value, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		return Int64Value(n), err == nil
	},
	Double: func(s string) (Value, bool) {
		f, err := strconv.ParseFloat(s, 64)
		return DoubleValue(f), err == nil
	},
	Single: func(s string) (Value, bool) {
		f, err := strconv.ParseFloat(s, 32)
		return SingleValue(float32(f)), err == nil
	},
	Boolean: func(s string) (Value, bool) {
		switch {
		case strings.EqualFold(s, "true"):
			return BoolValue(true), true
		case strings.EqualFold(s, "false"):
			return BoolValue(false), true
		}
		return Value{}, false
	},
	Char: func(s string) (Value, bool) {
		if utf8.RuneCountInString(s) != 1 {
			return Value{}, false
		}
		r, _ := utf8.DecodeRuneInString(s)
		return CharValue(r), r != utf8.RuneError
	},
	Byte: func(s string) (Value, bool) {
		n, err := strconv.ParseUint(s, 10, 8)
		return ByteValue(byte(n)), err == nil
	},
	DateTime: func(s string) (Value, bool) {
		t, err := dateparse.ParseLocal(s)
		// Fragments like "12:" or "10." parse with no year.
		return TimeValue(t), err == nil && t.Year() != 0
	},
}

// Parse converts text to kind. On failure the returned value holds the
// original text as a Text value, never a partial conversion.
func Parse(text string, kind Kind) (Value, bool) {
	if kind == Text {
		return TextValue(text), true
	}

	parse, ok := parsers[kind]
	if !ok {
		return TextValue(text), false
	}

	v, ok := parse(strings.TrimSpace(text))
	if !ok {
		return TextValue(text), false
	}
	return v, true
}
