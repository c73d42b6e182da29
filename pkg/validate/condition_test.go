package validate

import (
	"math"
	"regexp"
	"testing"
)

func TestEvaluate(t *testing.T) {
	positive := Min(1)
	small := Max(9)

	tests := []struct {
		name   string
		policy Policy
		value  Value
		conds  []Condition
		want   bool
	}{
		{"all accepts", ObeyAll, Int32Value(5), []Condition{positive, small}, true},
		{"all rejects", ObeyAll, Int32Value(15), []Condition{positive, small}, false},
		{"first ignores the rest", FirstDecides, Int32Value(15), []Condition{positive, small}, true},
		{"first rejects", FirstDecides, Int32Value(0), []Condition{positive, small}, false},
		{"any accepts one", AnyOf, Int32Value(15), []Condition{small, positive}, true},
		{"any rejects all", AnyOf, Int32Value(0), []Condition{positive, Max(-1)}, false},
		{"empty accepts", ObeyAll, Int32Value(0), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.policy, tt.value, tt.conds); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionHelpers(t *testing.T) {
	lower := regexp.MustCompile(`^[a-z]+$`)

	tests := []struct {
		name  string
		cond  Condition
		value Value
		want  bool
	}{
		{"between inside", Between(1, 10), DoubleValue(10), true},
		{"between outside", Between(1, 10), DoubleValue(10.5), false},
		{"min on text", Min(0), TextValue("5"), false},
		{"one of ignores case", OneOf("yes", "no"), TextValue(" YES "), true},
		{"one of rejects", OneOf("yes", "no"), TextValue("maybe"), false},
		{"pattern match", MatchPattern(lower), TextValue("ada"), true},
		{"pattern miss", MatchPattern(lower), TextValue("Ada"), false},
		{"not inverts", Not(OneOf("root")), TextValue("Root"), false},
		{"not passes", Not(OneOf("root")), TextValue("ada"), true},
		{"finite number", Finite(), DoubleValue(0.5), true},
		{"finite rejects NaN", Finite(), DoubleValue(math.NaN()), false},
		{"finite rejects Inf", Finite(), SingleValue(float32(math.Inf(-1))), false},
		{"finite ignores ints", Finite(), Int64Value(math.MaxInt64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond(tt.value); got != tt.want {
				t.Errorf("condition(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]Policy{"": ObeyAll, "All": ObeyAll, "first": FirstDecides, " any ": AnyOf} {
		got, err := ParsePolicy(name)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParsePolicy("most"); err == nil {
		t.Error("ParsePolicy() accepted an unknown policy")
	}
}
