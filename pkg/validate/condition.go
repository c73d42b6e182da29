package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Condition accepts or rejects a successfully converted value.
type Condition func(Value) bool

// Policy decides how a set of conditions combine.
type Policy int

const (
	// ObeyAll accepts only if every condition accepts.
	ObeyAll Policy = iota

	// FirstDecides evaluates only the first condition and takes its
	// verdict; the rest are ignored. This is what ReadWithConditions
	// does when obeyAll is false.
	FirstDecides

	// AnyOf accepts if at least one condition accepts.
	AnyOf
)

func (p Policy) String() string {
	switch p {
	case ObeyAll:
		return "all"
	case FirstDecides:
		return "first"
	case AnyOf:
		return "any"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy resolves "all", "first" or "any".
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all", "":
		return ObeyAll, nil
	case "first":
		return FirstDecides, nil
	case "any":
		return AnyOf, nil
	}
	return ObeyAll, fmt.Errorf("unknown policy %q", name)
}

// Evaluate applies conditions to v under policy. An empty condition set
// accepts.
func Evaluate(policy Policy, v Value, conditions []Condition) bool {
	if len(conditions) == 0 {
		return true
	}

	switch policy {
	case FirstDecides:
		return conditions[0](v)
	case AnyOf:
		for _, c := range conditions {
			if c(v) {
				return true
			}
		}
		return false
	default:
		for _, c := range conditions {
			if !c(v) {
				return false
			}
		}
		return true
	}
}

// Min accepts numeric values >= min.
func Min(min float64) Condition {
	return func(v Value) bool { return v.IsNumeric() && v.Float() >= min }
}

// Max accepts numeric values <= max.
func Max(max float64) Condition {
	return func(v Value) bool { return v.IsNumeric() && v.Float() <= max }
}

// Between accepts numeric values in [min, max].
func Between(min, max float64) Condition {
	return func(v Value) bool {
		return v.IsNumeric() && v.Float() >= min && v.Float() <= max
	}
}

// Finite rejects NaN and infinite floating-point values. Other kinds pass.
func Finite() Condition {
	return func(v Value) bool {
		if v.Kind() != Double && v.Kind() != Single {
			return true
		}
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
}

// OneOf accepts values whose textual form equals one of options, ignoring case.
func OneOf(options ...string) Condition {
	return func(v Value) bool {
		s := strings.TrimSpace(v.String())
		for _, o := range options {
			if strings.EqualFold(s, o) {
				return true
			}
		}
		return false
	}
}

// MatchPattern accepts values whose textual form matches re.
func MatchPattern(re *regexp.Regexp) Condition {
	return func(v Value) bool { return re.MatchString(v.String()) }
}

// Not inverts c.
func Not(c Condition) Condition {
	return func(v Value) bool { return !c(v) }
}
