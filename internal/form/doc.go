// Package form loads multi-field prompt forms from HCL and runs them.
//
// A form file declares an optional title and one field block per value:
//
//	title = "Register"
//
//	field "age" {
//	  prompt     = "Age"
//	  kind       = "int32"
//	  policy     = "all"
//	  conditions = [value > 0, value < 130]
//	}
//
//	field "email" {
//	  kind = "email"
//	}
//
//	field "nickname" {
//	  pattern = "^[a-z]{3,12}$"
//	  exclude = ["admin", "root"]
//	}
//
// Field attributes:
//   - prompt:     label printed before the input (defaults to the field name)
//   - kind:       any validate kind name, or "email" / "color"
//   - policy:     "all" (default), "first" or "any"
//   - conditions: list of boolean expressions over `value`
//   - pattern:    anchored regular expression for text fields
//   - exclude:    values to refuse, compared without case
//
// pattern and exclude always apply, whatever the policy. Numeric fields
// never accept NaN or infinities, since they cannot be encoded as JSON.
//
// Conditions are ordinary HCL expressions. `value` is bound to the
// converted input: a number for numeric kinds, a bool for booleans and a
// string otherwise (RFC 3339 for date-times). A handful of functions are
// available: strlen, lower, upper, trimspace, abs and regex. An
// expression that fails to evaluate or does not yield a bool rejects the
// input.
//
// Example usage:
//
//	f, err := form.Load("register.hcl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sub, err := form.Run(validate.NewReader(console.New()), f)
//	json.NewEncoder(os.Stdout).Encode(sub)
package form
