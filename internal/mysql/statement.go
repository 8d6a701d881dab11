package mysql

import (
	"regexp"
	"strings"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// AllDatabases is the dbname that grants on every database.
const AllDatabases = "*"

// Account statements. The mysql driver interpolates the ? placeholders
// client side (interpolateParams=true), escaping them as string literals.
const (
	createUserStmt = "CREATE USER ?@? IDENTIFIED BY ?"
	dropUserStmt   = "DROP USER ?@?"
	showGrantsStmt = "SHOW GRANTS FOR ?@?"
)

// databaseName limits grant targets to plain identifiers. A '?' would be
// taken for a placeholder by the driver, so it is excluded too.
var databaseName = regexp.MustCompile(`^[0-9A-Za-z$_\-]{1,64}$`)

// ValidDatabase reports whether name can be used as grant target.
func ValidDatabase(name string) bool {
	return name == AllDatabases || databaseName.MatchString(name)
}

// QuoteIdentifier quotes name with backticks, doubling embedded backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Target renders the ON clause object for database.
func Target(database string) string {
	if database == AllDatabases {
		return "*.*"
	}

	return QuoteIdentifier(database) + ".*"
}

// grantStatement builds "GRANT <privs> ON <target> TO ?@?".
// privs must already be sanitized vocabulary tokens.
func grantStatement(privs []privilege.Privilege, database string) string {
	return "GRANT " + privilege.Join(privs) + " ON " + Target(database) + " TO ?@?"
}
