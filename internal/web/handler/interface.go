package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/mysql"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, accounts Accounts, registry *role.Registry) error
}

// Accounts is the MySQL account surface the handlers work against.
// *mysql.Accounts implements it.
type Accounts interface {
	List(ctx context.Context) ([]mysql.Account, error)
	Exists(ctx context.Context, username string) (bool, error)
	Grants(ctx context.Context, acc mysql.Account) ([]string, error)
	Create(ctx context.Context, username, password string, privs []privilege.Privilege) error
	Grant(ctx context.Context, acc mysql.Account, privs []privilege.Privilege, database string) error
	Drop(ctx context.Context, username string) (int, error)
}

var _ Accounts = (*mysql.Accounts)(nil)
