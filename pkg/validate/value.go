package validate

import (
	"strconv"
	"strings"
	"time"
)

// Value is the result of converting a line to a Kind. Exactly one of the
// payload fields is meaningful, selected by kind.
type Value struct {
	kind Kind
	text string
	i    int64
	f    float64
	b    bool
	t    time.Time
}

// Constructors, one per kind.
func TextValue(s string) Value { return Value{kind: Text, text: s} }
func Int16Value(n int16) Value { return Value{kind: Int16, i: int64(n)} }
func Int32Value(n int32) Value { return Value{kind: Int32, i: int64(n)} }
func Int64Value(n int64) Value { return Value{kind: Int64, i: n} }
func DoubleValue(f float64) Value { return Value{kind: Double, f: f} }
func SingleValue(f float32) Value { return Value{kind: Single, f: float64(f)} }
func BoolValue(b bool) Value { return Value{kind: Boolean, b: b} }
func CharValue(r rune) Value { return Value{kind: Char, i: int64(r)} }
func ByteValue(b byte) Value { return Value{kind: Byte, i: int64(b)} }
func TimeValue(t time.Time) Value { return Value{kind: DateTime, t: t} }

// Kind returns the kind the value was converted to.
func (v Value) Kind() Kind { return v.kind }

// IsNumeric reports whether the value holds an integer, byte or float.
func (v Value) IsNumeric() bool {
	switch v.kind {
	case Int16, Int32, Int64, Byte, Double, Single:
		return true
	}
	return false
}

// Int returns the integer payload. Floats are truncated; other kinds yield 0.
func (v Value) Int() int64 {
	switch v.kind {
	case Int16, Int32, Int64, Byte, Char:
		return v.i
	case Double, Single:
		return int64(v.f)
	}
	return 0
}

// Float returns numeric payloads as float64; other kinds yield 0.
func (v Value) Float() float64 {
	switch v.kind {
	case Double, Single:
		return v.f
	case Int16, Int32, Int64, Byte:
		return float64(v.i)
	}
	return 0
}

func (v Value) Bool() bool { return v.kind == Boolean && v.b }
func (v Value) Rune() rune { return rune(v.i) }
func (v Value) Time() time.Time { return v.t }

// Any returns the payload as its natural Go type.
func (v Value) Any() any {
	switch v.kind {
	case Int16:
		return int16(v.i)
	case Int32:
		return int32(v.i)
	case Int64:
		return v.i
	case Double:
		return v.f
	case Single:
		return float32(v.f)
	case Boolean:
		return v.b
	case Char:
		return rune(v.i)
	case Byte:
		return byte(v.i)
	case DateTime:
		return v.t
	}
	return v.text
}

// String returns the textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case Int16, Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Byte:
		return strconv.FormatUint(uint64(v.i), 10)
	case Double:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Single:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Boolean:
		return strconv.FormatBool(v.b)
	case Char:
		return string(rune(v.i))
	case DateTime:
		return v.t.Format(time.DateTime)
	}
	return v.text
}

// IsBlank reports whether the value's textual form is empty or whitespace.
func IsBlank(v Value) bool {
	return strings.TrimSpace(v.String()) == ""
}
