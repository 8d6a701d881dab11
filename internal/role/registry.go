package role

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// Registry holds the role table and the per-user overrides.
// Built-in roles are fixed at construction; custom roles live in memory only.
type Registry struct {
	mu    sync.RWMutex
	roles map[string]Role
	store AssignmentStore
}

// NewRegistry creates a registry seeded with the built-in roles.
func NewRegistry(store AssignmentStore) (*Registry, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	r := &Registry{
		roles: make(map[string]Role),
		store: store,
	}

	for _, b := range builtins() {
		r.roles[b.Name] = b
	}

	return r, nil
}

// Define inserts or overwrites a custom role. The privileges must already be
// sanitized: any token outside the vocabulary is rejected, not dropped.
func (r *Registry) Define(name string, privs []privilege.Privilege, description string) (Role, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return Role{}, apierror.New(apierror.KindValidation, ErrRoleNameEmpty)
	case isReserved(name):
		return Role{}, apierror.New(apierror.KindValidation, fmt.Errorf("%w: %q", ErrRoleReserved, name))
	case len(privs) == 0:
		return Role{}, apierror.New(apierror.KindValidation, ErrNoPrivileges)
	}

	clean := make([]privilege.Privilege, 0, len(privs))
	seen := make(privilege.Set, len(privs))

	for _, p := range privs {
		if !privilege.IsValid(p) {
			return Role{}, apierror.New(apierror.KindValidation, fmt.Errorf("%w: %q", ErrInvalidPrivilege, p))
		}

		if seen.Has(p) {
			continue
		}

		seen[p] = struct{}{}
		clean = append(clean, p)
	}

	role := Role{
		Name:        name,
		Privileges:  clean,
		Description: description,
	}

	r.mu.Lock()
	r.roles[name] = role
	r.mu.Unlock()

	return role, nil
}

// Get returns the role called name.
func (r *Registry) Get(name string) (Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[name]

	return role, ok
}

// Exists reports whether name is a known role.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns the built-in roles followed by the custom roles sorted by name.
func (r *Registry) List() []Role {
	return append(Builtins(), r.ListCustom()...)
}

// ListCustom returns all roles except the built-ins, sorted by name.
func (r *Registry) ListCustom() []Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		if role.Builtin {
			continue
		}

		out = append(out, role)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Assign records roleName as the explicit role of username, replacing any prior override.
func (r *Registry) Assign(ctx context.Context, username, roleName string) error {
	if !r.Exists(roleName) {
		return apierror.New(apierror.KindNotFound, fmt.Errorf("%w: %q", ErrRoleNotFound, roleName))
	}

	if err := r.store.Set(ctx, username, roleName); err != nil {
		return apierror.Database(err)
	}

	return nil
}

// ClearAssignment removes the override of username. It is idempotent.
func (r *Registry) ClearAssignment(ctx context.Context, username string) error {
	if err := r.store.Delete(ctx, username); err != nil {
		return apierror.Database(err)
	}

	return nil
}

// Assignment returns the override of username, if any.
func (r *Registry) Assignment(ctx context.Context, username string) (string, bool, error) {
	role, found, err := r.store.Get(ctx, username)
	if err != nil {
		return "", false, apierror.Database(err)
	}

	return role, found, nil
}
