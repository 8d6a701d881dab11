// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
)

// interpolateParams makes the mysql driver bind ? placeholders client side.
// CREATE USER, GRANT and DROP USER can not take server side placeholders for
// account names, so without it those statements fail to prepare.
const interpolateParams = "interpolateParams=true"

// Create builds the MySQL Data Source Name from the configuration.
func Create(db config.DB) string {
	extras := db.Extras
	if !strings.Contains(extras, "interpolateParams=") {
		if extras != "" {
			extras += "&"
		}

		extras += interpolateParams
	}

	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		extras,
	)

	return out
}

// Postgres builds a PostgreSQL connection URL from the configuration.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   "/" + db.Name,
	}

	out := u.String()
	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}
