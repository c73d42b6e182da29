package form

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/rickgorman/conval/pkg/validate"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// valueVar is the only variable a condition may reference.
const valueVar = "value"

var conditionFunctions = map[string]function.Function{
	"strlen":    stdlib.StrlenFunc,
	"lower":     stdlib.LowerFunc,
	"upper":     stdlib.UpperFunc,
	"trimspace": stdlib.TrimSpaceFunc,
	"abs":       stdlib.AbsoluteFunc,
	"regex":     stdlib.RegexFunc,
}

// conditionExprs splits the conditions attribute into one expression per
// element. An absent attribute decodes to a static null and yields none.
func conditionExprs(expr hcl.Expression) ([]hcl.Expression, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	if len(expr.Variables()) == 0 {
		if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsNull() {
			return nil, nil
		}
	}
	return hcl.ExprList(expr)
}

// compileCondition turns an expression over `value` into a Condition.
func compileCondition(expr hcl.Expression) (validate.Condition, error) {
	for _, traversal := range expr.Variables() {
		if name := traversal.RootName(); name != valueVar {
			return nil, fmt.Errorf("condition at %s: unknown variable %q (only %q is available)",
				expr.Range(), name, valueVar)
		}
	}

	return func(v validate.Value) (ok bool) {
		val, convertible := toCty(v)
		if !convertible {
			return false
		}
		defer func() {
			if r := recover(); r != nil {
				slog.Debug("Condition failed.", "range", expr.Range().String(), "panic", r)
				ok = false
			}
		}()

		ctx := &hcl.EvalContext{
			Variables: map[string]cty.Value{valueVar: val},
			Functions: conditionFunctions,
		}
		out, diags := expr.Value(ctx)
		if diags.HasErrors() || out.IsNull() || !out.IsKnown() || !out.Type().Equals(cty.Bool) {
			return false
		}
		return out.True()
	}, nil
}

// toCty converts a read value into the cty value bound to `value`.
// NaN and infinities have no cty number and report false.
func toCty(v validate.Value) (cty.Value, bool) {
	switch v.Kind() {
	case validate.Int16, validate.Int32, validate.Int64, validate.Byte:
		return cty.NumberIntVal(v.Int()), true
	case validate.Double, validate.Single:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return cty.NilVal, false
		}
		return cty.NumberFloatVal(f), true
	case validate.Boolean:
		return cty.BoolVal(v.Bool()), true
	case validate.DateTime:
		return cty.StringVal(v.Time().Format(time.RFC3339)), true
	}
	return cty.StringVal(v.String()), true
}
