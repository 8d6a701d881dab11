package role

import (
	"errors"
)

var (
	// ErrRoleNameEmpty is returned when a role is defined without a name.
	ErrRoleNameEmpty = errors.New("role name can not be empty")
	// ErrRoleReserved is returned when a custom role would shadow a built-in role or label.
	ErrRoleReserved = errors.New("role name is reserved")
	// ErrNoPrivileges is returned when a role is defined with an empty privilege set.
	ErrNoPrivileges = errors.New("role needs at least one privilege")
	// ErrInvalidPrivilege is returned when a role holds a token outside the vocabulary.
	ErrInvalidPrivilege = errors.New("invalid privilege")
	// ErrRoleNotFound is returned when a role name is unknown.
	ErrRoleNotFound = errors.New("role not found")
	// ErrStoreNil is returned when the registry is created without an assignment store.
	ErrStoreNil = errors.New("assignment store is nil")
)
