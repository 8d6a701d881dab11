// Package privilege holds the MySQL privilege vocabulary accepted by the API,
// the sanitizer applied to user input and the parser for SHOW GRANTS output.
package privilege

import (
	"strings"
)

// Privilege is a single MySQL grant keyword, always upper case.
type Privilege string

// The privilege vocabulary. Anything else is rejected at the input boundaries.
const (
	Select        Privilege = "SELECT"
	Insert        Privilege = "INSERT"
	Update        Privilege = "UPDATE"
	Delete        Privilege = "DELETE"
	Create        Privilege = "CREATE"
	Drop          Privilege = "DROP"
	Index         Privilege = "INDEX"
	Alter         Privilege = "ALTER"
	ShowView      Privilege = "SHOW VIEW"
	LockTables    Privilege = "LOCK TABLES"
	Trigger       Privilege = "TRIGGER"
	Event         Privilege = "EVENT"
	AllPrivileges Privilege = "ALL PRIVILEGES"
)

// vocabulary in declaration order.
var vocabulary = []Privilege{ //nolint:gochecknoglobals
	Select, Insert, Update, Delete, Create, Drop, Index, Alter,
	ShowView, LockTables, Trigger, Event, AllPrivileges,
}

var known = func() map[Privilege]struct{} { //nolint:gochecknoglobals
	m := make(map[Privilege]struct{}, len(vocabulary))
	for _, p := range vocabulary {
		m[p] = struct{}{}
	}

	return m
}()

// All returns a copy of the vocabulary.
func All() []Privilege {
	out := make([]Privilege, len(vocabulary))
	copy(out, vocabulary)

	return out
}

// IsValid reports whether p is part of the vocabulary.
func IsValid(p Privilege) bool {
	_, ok := known[p]
	return ok
}

// Normalize upper-cases a raw token and collapses inner whitespace,
// so " lock   tables" becomes "LOCK TABLES". The result may still be invalid.
func Normalize(raw string) Privilege {
	return Privilege(strings.ToUpper(strings.Join(strings.Fields(raw), " ")))
}

// Sanitize splits a comma separated privilege string and returns the
// vocabulary tokens it contains, upper-cased, deduplicated and in input order.
// Unknown tokens are dropped. An empty result must be rejected by the caller.
func Sanitize(s string) []Privilege {
	return SanitizeList(strings.Split(s, ","))
}

// SanitizeList is Sanitize for input that already arrives as a list.
func SanitizeList(raw []string) []Privilege {
	var (
		out  = make([]Privilege, 0, len(raw))
		seen = make(map[Privilege]struct{}, len(raw))
	)

	for _, r := range raw {
		p := Normalize(r)
		if !IsValid(p) {
			continue
		}

		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Join renders privileges the way they appear in a GRANT statement.
func Join(privs []Privilege) string {
	parts := make([]string, len(privs))
	for i, p := range privs {
		parts[i] = string(p)
	}

	return strings.Join(parts, ", ")
}

// Strings converts privileges to plain strings.
func Strings(privs []Privilege) []string {
	out := make([]string, len(privs))
	for i, p := range privs {
		out[i] = string(p)
	}

	return out
}
