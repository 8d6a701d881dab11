package privilege

import (
	"strings"
)

const (
	grantKeyword = "GRANT "
	onKeyword    = " ON "
)

// Set is an unordered set of privileges.
type Set map[Privilege]struct{}

// NewSet builds a set from privs.
func NewSet(privs ...Privilege) Set {
	s := make(Set, len(privs))
	for _, p := range privs {
		s[p] = struct{}{}
	}

	return s
}

// Has reports whether p is in the set.
func (s Set) Has(p Privilege) bool {
	_, ok := s[p]
	return ok
}

// Equal reports whether both sets hold exactly the same privileges.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}

	for p := range s {
		if !o.Has(p) {
			return false
		}
	}

	return true
}

// ParseGrant extracts the vocabulary privileges of a single SHOW GRANTS line,
// e.g. "GRANT SELECT, SHOW VIEW ON `shop`.* TO `bob`@`%`".
// Malformed lines and unknown tokens yield nothing; it never fails.
func ParseGrant(grant string) []Privilege {
	upper := strings.ToUpper(grant)

	start := strings.Index(upper, grantKeyword)
	if start < 0 {
		return nil
	}

	start += len(grantKeyword)

	end := strings.Index(upper[start:], onKeyword)
	if end < 0 {
		return nil
	}

	return SanitizeList(strings.Split(upper[start:start+end], ","))
}

// ParseGrants returns the union of the privileges of all grant lines.
func ParseGrants(grants []string) Set {
	set := make(Set)

	for _, g := range grants {
		for _, p := range ParseGrant(g) {
			set[p] = struct{}{}
		}
	}

	return set
}
