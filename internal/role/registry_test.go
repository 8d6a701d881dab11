package role

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// mapStore is a minimal in-memory AssignmentStore for tests.
type mapStore struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (s *mapStore) Get(_ context.Context, username string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", false, s.err
	}

	v, ok := s.data[username]

	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, username, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.data[username] = role

	return nil
}

func (s *mapStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	delete(s.data, username)

	return nil
}

func newTestRegistry(t *testing.T) (*Registry, *mapStore) {
	t.Helper()

	store := newMapStore()
	reg, err := NewRegistry(store)
	require.NoError(t, err)

	return reg, store
}

func TestNewRegistryNilStore(t *testing.T) {
	_, err := NewRegistry(nil)
	require.ErrorIs(t, err, ErrStoreNil)
}

func TestDefine(t *testing.T) {
	testCases := []struct {
		name        string
		roleName    string
		privs       []privilege.Privilege
		expectedErr error
	}{
		{
			name:     "valid role",
			roleName: "reporting",
			privs:    []privilege.Privilege{privilege.Select, privilege.ShowView, privilege.Select},
		},
		{
			name:        "empty name",
			roleName:    "  ",
			privs:       []privilege.Privilege{privilege.Select},
			expectedErr: ErrRoleNameEmpty,
		},
		{
			name:        "built-in name",
			roleName:    Developer,
			privs:       []privilege.Privilege{privilege.Select},
			expectedErr: ErrRoleReserved,
		},
		{
			name:        "inference label",
			roleName:    ReadOnly,
			privs:       []privilege.Privilege{privilege.Select},
			expectedErr: ErrRoleReserved,
		},
		{
			name:        "no privileges",
			roleName:    "empty",
			privs:       nil,
			expectedErr: ErrNoPrivileges,
		},
		{
			name:        "token outside vocabulary",
			roleName:    "super",
			privs:       []privilege.Privilege{privilege.Select, "SUPER"},
			expectedErr: ErrInvalidPrivilege,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)

			role, err := reg.Define(tc.roleName, tc.privs, "desc")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.ErrorIs(t, err, apierror.ErrValidation)
				assert.False(t, reg.Exists(tc.roleName) && !IsBuiltin(tc.roleName))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []privilege.Privilege{privilege.Select, privilege.ShowView}, role.Privileges)
			assert.True(t, reg.Exists(tc.roleName))
		})
	}
}

func TestDefineOverwrites(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Define("etl", []privilege.Privilege{privilege.Select}, "first")
	require.NoError(t, err)

	_, err = reg.Define("etl", []privilege.Privilege{privilege.Insert}, "second")
	require.NoError(t, err)

	role, ok := reg.Get("etl")
	require.True(t, ok)
	assert.Equal(t, []privilege.Privilege{privilege.Insert}, role.Privileges)
	assert.Equal(t, "second", role.Description)
}

func TestListCustom(t *testing.T) {
	reg, _ := newTestRegistry(t)
	assert.Empty(t, reg.ListCustom())

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := reg.Define(name, []privilege.Privilege{privilege.Select}, "")
		require.NoError(t, err)
	}

	custom := reg.ListCustom()
	require.Len(t, custom, 3)
	assert.Equal(t, "alpha", custom[0].Name)
	assert.Equal(t, "mid", custom[1].Name)
	assert.Equal(t, "zeta", custom[2].Name)

	for _, r := range custom {
		assert.False(t, IsBuiltin(r.Name))
	}

	all := reg.List()
	assert.Len(t, all, len(Builtins())+3)
	assert.Equal(t, DatabaseAdmin, all[0].Name)
}

func TestAssign(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry(t)

	require.NoError(t, reg.Assign(ctx, "bob", Analyst))
	require.NoError(t, reg.Assign(ctx, "bob", Backup))
	assert.Equal(t, Backup, store.data["bob"])

	err := reg.Assign(ctx, "bob", "nope")
	require.ErrorIs(t, err, ErrRoleNotFound)
	require.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, Backup, store.data["bob"])

	err = reg.Assign(ctx, "bob", ReadOnly)
	require.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestClearAssignment(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry(t)

	require.NoError(t, reg.Assign(ctx, "bob", Developer))
	require.NoError(t, reg.ClearAssignment(ctx, "bob"))
	require.NoError(t, reg.ClearAssignment(ctx, "bob"))
	assert.NotContains(t, store.data, "bob")
}

func TestStoreFailureIsDatabaseError(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry(t)
	store.err = errors.New("connection refused")

	require.ErrorIs(t, reg.Assign(ctx, "bob", Developer), apierror.ErrDatabase)
	require.ErrorIs(t, reg.ClearAssignment(ctx, "bob"), apierror.ErrDatabase)

	_, _, err := reg.Assignment(ctx, "bob")
	require.ErrorIs(t, err, apierror.ErrDatabase)
}
