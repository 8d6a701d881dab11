// Package role implements the role registry and the inference engine that
// maps the privileges actually granted to a MySQL account back to a role label.
package role

import (
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// Built-in role names.
const (
	DatabaseAdmin = "database_admin"
	Developer     = "developer"
	Analyst       = "analyst"
	Backup        = "backup"
)

// Inference-only labels. They are never roles: they can not be assigned or defined.
const (
	ReadOnly = "read_only"
	Unknown  = "unknown"
)

// Role is a named bundle of privileges.
type Role struct {
	Name        string                `json:"name"`
	Privileges  []privilege.Privilege `json:"privileges"`
	Description string                `json:"description"`
	Builtin     bool                  `json:"-"`
}

// PrivilegeSet returns the role privileges as a set.
func (r Role) PrivilegeSet() privilege.Set {
	return privilege.NewSet(r.Privileges...)
}

func builtins() []Role {
	return []Role{
		{
			Name:        DatabaseAdmin,
			Privileges:  []privilege.Privilege{privilege.AllPrivileges},
			Description: "Full control over every database",
			Builtin:     true,
		},
		{
			Name: Developer,
			Privileges: []privilege.Privilege{
				privilege.Select, privilege.Insert, privilege.Update, privilege.Delete,
				privilege.Create, privilege.Drop, privilege.Index, privilege.Alter,
			},
			Description: "Read, write and change schema",
			Builtin:     true,
		},
		{
			Name:        Analyst,
			Privileges:  []privilege.Privilege{privilege.Select, privilege.ShowView},
			Description: "Read tables and views",
			Builtin:     true,
		},
		{
			Name: Backup,
			Privileges: []privilege.Privilege{
				privilege.Select, privilege.LockTables, privilege.ShowView,
				privilege.Event, privilege.Trigger,
			},
			Description: "Consistent dumps including events and triggers",
			Builtin:     true,
		},
	}
}

// Builtins returns the built-in roles in a fixed order.
func Builtins() []Role {
	return builtins()
}

// IsBuiltin reports whether name is one of the built-in roles.
func IsBuiltin(name string) bool {
	switch name {
	case DatabaseAdmin, Developer, Analyst, Backup:
		return true
	default:
		return false
	}
}

func isReserved(name string) bool {
	return IsBuiltin(name) || name == ReadOnly || name == Unknown
}
