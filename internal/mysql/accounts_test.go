package mysql

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// setupTestDB mimics the mysql.user table in an attached SQLite schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// ATTACH is per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("ATTACH DATABASE ':memory:' AS mysql").Error)
	require.NoError(t, db.Exec("CREATE TABLE mysql.user (User TEXT NOT NULL, Host TEXT NOT NULL)").Error)

	for _, row := range [][2]string{
		{"root", "localhost"},
		{"mysql.sys", "localhost"},
		{"bob", "%"},
		{"bob", "localhost"},
		{"alice", "%"},
	} {
		require.NoError(t, db.Exec("INSERT INTO mysql.user (User, Host) VALUES (?, ?)", row[0], row[1]).Error)
	}

	return db
}

func TestList(t *testing.T) {
	accounts := New(setupTestDB(t))

	list, err := accounts.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Account{
		{Username: "alice", Host: "%"},
		{Username: "bob", Host: "%"},
		{Username: "bob", Host: "localhost"},
	}, list)
}

func TestExistsAndHosts(t *testing.T) {
	ctx := context.Background()
	accounts := New(setupTestDB(t))

	ok, err := accounts.Exists(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = accounts.Exists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	hosts, err := accounts.Hosts(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"%", "localhost"}, hosts)

	hosts, err = accounts.Hosts(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestDropUnknownUser(t *testing.T) {
	accounts := New(setupTestDB(t))

	n, err := accounts.Drop(context.Background(), "nobody")
	require.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Zero(t, n)
}

func TestDatabaseErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	accounts := New(setupTestDB(t))

	// SQLite does not speak MySQL account statements, which makes every call fail.
	_, err := accounts.Drop(ctx, "bob")
	require.ErrorIs(t, err, apierror.ErrDatabase)

	_, err = accounts.Grants(ctx, Account{Username: "bob", Host: "%"})
	require.ErrorIs(t, err, apierror.ErrDatabase)

	err = accounts.Create(ctx, "carol", "pw", []privilege.Privilege{privilege.Select})
	require.ErrorIs(t, err, apierror.ErrDatabase)

	err = accounts.Grant(ctx, Account{Username: "bob"}, []privilege.Privilege{privilege.Select}, "shop")
	require.ErrorIs(t, err, apierror.ErrDatabase)
}

func TestInputValidation(t *testing.T) {
	ctx := context.Background()
	accounts := New(setupTestDB(t))

	err := accounts.Create(ctx, "carol", "pw", nil)
	require.ErrorIs(t, err, apierror.ErrValidation)

	err = accounts.Grant(ctx, Account{Username: "bob"}, nil, "shop")
	require.ErrorIs(t, err, apierror.ErrValidation)

	err = accounts.Grant(ctx, Account{Username: "bob"}, []privilege.Privilege{privilege.Select}, "bad`name")
	require.ErrorIs(t, err, apierror.ErrValidation)
}
