package validate

import "regexp"

// emailPattern: local part of word characters, dots and hyphens; a domain
// label of word characters and hyphens; then one or more ".xx" labels of
// at least two word characters. Anchored at both ends.
var emailPattern = regexp.MustCompile(`^([\w\.\-]+)@([\w\-]+)((\.(\w){2,})+)$`)

// IsEmail reports whether s has the shape ReadEmail accepts.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
