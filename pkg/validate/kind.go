package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown kind")

// Kind selects which primitive conversion a read attempts.
type Kind int

const (
	Text Kind = iota
	Int16
	Int32
	Int64
	Double
	Single
	Boolean
	Char
	Byte
	DateTime
)

var kindNames = [...]string{
	Text:     "text",
	Int16:    "int16",
	Int32:    "int32",
	Int64:    "int64",
	Double:   "double",
	Single:   "single",
	Boolean:  "boolean",
	Char:     "char",
	Byte:     "byte",
	DateTime: "datetime",
}

// kindAliases maps alternate spellings onto kinds.
var kindAliases = map[string]Kind{
	"string":  Text,
	"short":   Int16,
	"int":     Int32,
	"long":    Int64,
	"float64": Double,
	"float32": Single,
	"float":   Single,
	"bool":    Boolean,
	"rune":    Char,
	"uint8":   Byte,
	"date":    DateTime,
	"time":    DateTime,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Text, Int16, Int32, Int64, Double, Single, Boolean, Char, Byte, DateTime}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Text && k <= DateTime
}

// ParseKind resolves a kind name or alias, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return Text, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
