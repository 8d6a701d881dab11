// Package mysql issues the account management statements against the MySQL
// server: CREATE USER, GRANT, DROP USER and SHOW GRANTS.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// DefaultHost is the host part used when none is given.
const DefaultHost = "%"

// SystemAccounts are never listed.
var SystemAccounts = []string{ //nolint:gochecknoglobals
	"root",
	"mysql.sys",
	"mysql.session",
	"mysql.infoschema",
	"mariadb.sys",
	"debian-sys-maint",
}

// Account identifies a MySQL account.
type Account struct {
	Username string
	Host     string
}

func (a Account) String() string {
	return fmt.Sprintf("'%s'@'%s'", a.Username, a.Host)
}

// Accounts manages MySQL accounts.
type Accounts struct {
	db *gorm.DB
}

// New creates an Accounts manager on db.
func New(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// sqlDB returns the pooled connection. Account statements use it directly
// because gorm reads "@" in raw SQL as a named parameter.
func (a *Accounts) sqlDB() (*sql.DB, error) {
	sqlDB, err := a.db.DB()
	if err != nil {
		return nil, apierror.Database(err)
	}

	return sqlDB, nil
}

// trace reports a statement run outside of gorm to the gorm logger, so it is
// logged and redacted like gorm's own statements.
func (a *Accounts) trace(ctx context.Context, begin time.Time, stmt string, args []interface{}, rows int64, err error) {
	if a.db.Logger == nil {
		return
	}

	a.db.Logger.Trace(ctx, begin, func() (string, int64) {
		return a.db.Dialector.Explain(stmt, args...), rows
	}, err)
}

// exec runs stmt on the pooled connection. The returned error is the
// driver's, unwrapped.
func (a *Accounts) exec(ctx context.Context, sqlDB *sql.DB, stmt string, args ...interface{}) error {
	begin := time.Now()

	res, err := sqlDB.ExecContext(ctx, stmt, args...)

	rows := int64(-1)
	if err == nil {
		if n, rowsErr := res.RowsAffected(); rowsErr == nil {
			rows = n
		}
	}

	a.trace(ctx, begin, stmt, args, rows, err)

	return err
}

// List returns every account except the system accounts, ordered by user and host.
func (a *Accounts) List(ctx context.Context) ([]Account, error) {
	var accounts []Account

	err := a.db.WithContext(ctx).
		Raw("SELECT User AS username, Host AS host FROM mysql.user WHERE User NOT IN ? ORDER BY User, Host",
			SystemAccounts).
		Scan(&accounts).Error
	if err != nil {
		return nil, apierror.Database(err)
	}

	return accounts, nil
}

// Hosts returns the host parts of every account named username.
func (a *Accounts) Hosts(ctx context.Context, username string) ([]string, error) {
	rows, err := a.db.WithContext(ctx).
		Raw("SELECT Host FROM mysql.user WHERE User = ? ORDER BY Host", username).
		Rows()
	if err != nil {
		return nil, apierror.Database(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var hosts []string

	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, apierror.Database(err)
		}

		hosts = append(hosts, h)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.Database(err)
	}

	return hosts, nil
}

// Exists reports whether at least one account named username exists.
func (a *Accounts) Exists(ctx context.Context, username string) (bool, error) {
	var count int64

	err := a.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM mysql.user WHERE User = ?", username).
		Scan(&count).Error
	if err != nil {
		return false, apierror.Database(err)
	}

	return count > 0, nil
}

// Grants returns the SHOW GRANTS lines of acc.
func (a *Accounts) Grants(ctx context.Context, acc Account) ([]string, error) {
	sqlDB, err := a.sqlDB()
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	rows, err := sqlDB.QueryContext(ctx, showGrantsStmt, acc.Username, acc.Host)
	a.trace(ctx, begin, showGrantsStmt, []interface{}{acc.Username, acc.Host}, -1, err)

	if err != nil {
		return nil, apierror.Database(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var grants []string

	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, apierror.Database(err)
		}

		grants = append(grants, g)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.Database(err)
	}

	return grants, nil
}

// Create creates username@'%' and grants privs on all databases.
// The two statements are not atomic: when the grant fails the new account
// is dropped again and the grant error is returned.
func (a *Accounts) Create(ctx context.Context, username, password string, privs []privilege.Privilege) error {
	if len(privs) == 0 {
		return apierror.Validation("no privileges to grant")
	}

	sqlDB, err := a.sqlDB()
	if err != nil {
		return err
	}

	acc := Account{Username: username, Host: DefaultHost}

	if err := a.exec(ctx, sqlDB, createUserStmt, acc.Username, acc.Host, password); err != nil {
		return apierror.Database(err)
	}

	if err := a.exec(ctx, sqlDB, grantStatement(privs, AllDatabases), acc.Username, acc.Host); err != nil {
		if dropErr := a.exec(ctx, sqlDB, dropUserStmt, acc.Username, acc.Host); dropErr != nil {
			log.Error().Err(dropErr).Str("account", acc.String()).
				Msg("grant failed and the new account could not be dropped")
		}

		return apierror.Database(err)
	}

	return nil
}

// Grant grants privs on database to acc. database "*" means every database.
func (a *Accounts) Grant(ctx context.Context, acc Account, privs []privilege.Privilege, database string) error {
	if len(privs) == 0 {
		return apierror.Validation("no valid privileges provided")
	}

	if !ValidDatabase(database) {
		return apierror.Validation("invalid database name %q", database)
	}

	if acc.Host == "" {
		acc.Host = DefaultHost
	}

	sqlDB, err := a.sqlDB()
	if err != nil {
		return err
	}

	if err := a.exec(ctx, sqlDB, grantStatement(privs, database), acc.Username, acc.Host); err != nil {
		return apierror.Database(err)
	}

	return nil
}

// Drop drops every account named username and returns how many were dropped.
func (a *Accounts) Drop(ctx context.Context, username string) (int, error) {
	hosts, err := a.Hosts(ctx, username)
	if err != nil {
		return 0, err
	}

	if len(hosts) == 0 {
		return 0, apierror.NotFound("user %q not found", username)
	}

	sqlDB, err := a.sqlDB()
	if err != nil {
		return 0, err
	}

	for i, host := range hosts {
		if err := a.exec(ctx, sqlDB, dropUserStmt, username, host); err != nil {
			return i, apierror.Database(errors.Wrapf(err, "drop %s", Account{Username: username, Host: host}))
		}
	}

	return len(hosts), nil
}
