// Package grant provides the handler granting sanitized privileges on one
// database, or on all of them, to an account.
package grant

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/mysql"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler"
)

const (
	// Path is the grant endpoint.
	Path = handler.RootPath + "grant"
)

// Request is the body of POST /grant. Privilege is a comma separated list,
// DBName "*" grants on all databases.
type Request struct {
	Username  string `json:"username"  validate:"required"`
	Privilege string `json:"privilege" validate:"required"`
	DBName    string `json:"dbname"    validate:"required"`
	Host      string `json:"host"`
}

// Service serves the grant endpoint.
type Service struct {
	handler.Service
	cfg      *config.Config
	accounts handler.Accounts
}

// Init registers routes. The registry is not used by this handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, accounts handler.Accounts, _ *role.Registry) error {
	if app == nil || cfg == nil || accounts == nil {
		return fmt.Errorf("grant handler: %s", handler.ErrNilDepsFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = accounts

	app.Post(Path, s.Post)

	return nil
}

// Post grants the sanitized privileges.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(Request)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	privs := privilege.Sanitize(in.Privilege)
	if len(privs) == 0 {
		return apierror.Validation("no valid privileges in %q", in.Privilege)
	}

	acc := mysql.Account{Username: in.Username, Host: in.Host}
	if acc.Host == "" {
		acc.Host = mysql.DefaultHost
	}

	if err := s.accounts.Grant(c.UserContext(), acc, privs, in.DBName); err != nil {
		return err
	}

	log.Info().
		Str("account", acc.String()).
		Str("privileges", privilege.Join(privs)).
		Str("database", in.DBName).
		Msg("privileges granted")

	return handler.OK(c, fmt.Sprintf("Granted %s on %s to %s",
		privilege.Join(privs), mysql.Target(in.DBName), acc.String()))
}
