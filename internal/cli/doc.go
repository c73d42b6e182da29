// Package cli implements the conval command line.
//
// Every command reads from stdin through a validate.Reader. Prompts,
// styling and cursor control go to stderr; only accepted values are
// printed on stdout, so commands compose in shell scripts:
//
//	age=$(conval ask --kind int32 --min 0 --max 130 --prompt Age)
//	email=$(conval email)
//	conval form register.hcl > submission.json
//
// Commands:
//   - ask:     read a value of any kind, optionally with conditions
//   - email:   read an email address
//   - color:   read a console color name
//   - date:    check a string against an exact date format
//   - menu:    render a numbered menu, optionally reading a choice
//   - form:    run an HCL form and print the submission as JSON
//   - version: print the version
//
// Global flags:
//   - --no-color:     disable styling (also NO_COLOR / CONVAL_NO_COLOR)
//   - --debug:        log rejected attempts to stderr (also CONVAL_DEBUG)
//   - --max-attempts: give up after N rejected lines (also CONVAL_MAX_ATTEMPTS)
//
// Settings may also be placed in .conval/env in the working directory.
package cli
