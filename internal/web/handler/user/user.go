// Package user provides the handlers for listing, creating and dropping MySQL
// accounts and for pinning a role to an account.
package user

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler"
)

const (
	// Path is the base path for user management.
	Path = handler.RootPath + "users"
)

type (
	// Item is one row of the user listing.
	Item struct {
		Username   string   `json:"username"`
		Host       string   `json:"host"`
		Privileges []string `json:"privileges"`
		Role       string   `json:"role"`
	}

	// CreateRequest is the body of POST /users.
	CreateRequest struct {
		Username string `json:"username" validate:"required,max=32"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role"     validate:"required"`
	}

	// AssignRequest is the body of POST /users/:username/role.
	AssignRequest struct {
		Role string `json:"role" validate:"required"`
	}

	// AssignResponse confirms a role assignment.
	AssignResponse struct {
		handler.Response
		User string `json:"user"`
		Role string `json:"role"`
	}
)

// Service serves the user endpoints.
type Service struct {
	handler.Service
	cfg      *config.Config
	accounts handler.Accounts
	registry *role.Registry
}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, accounts handler.Accounts, registry *role.Registry) error {
	if app == nil || cfg == nil || accounts == nil || registry == nil {
		return fmt.Errorf("user handler: %s", handler.ErrNilDepsFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = accounts
	s.registry = registry

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Delete("/:username", s.Delete)
		router.Post("/:username/role", s.AssignRole)
	})

	return nil
}

// usernameParam returns the decoded :username segment. fiber keeps path
// params percent-encoded, account names may hold spaces or slashes.
func usernameParam(c *fiber.Ctx) (string, error) {
	raw := c.Params("username")

	username, err := url.PathUnescape(raw)
	if err != nil {
		return "", apierror.Validation("invalid username %q", raw)
	}

	return username, nil
}

// List returns every non-system account with its grants and inferred role.
func (s *Service) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return err
	}

	items := make([]Item, 0, len(accounts))

	for _, acc := range accounts {
		grants, err := s.accounts.Grants(ctx, acc)
		if err != nil {
			return err
		}

		inferred, err := s.registry.Infer(ctx, acc.Username, grants)
		if err != nil {
			return err
		}

		items = append(items, Item{
			Username:   acc.Username,
			Host:       acc.Host,
			Privileges: grants,
			Role:       inferred,
		})
	}

	return c.JSON(items)
}

// Create creates an account granted the privileges of a known role on all
// databases, and pins that role to the account.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(CreateRequest)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	r, ok := s.registry.Get(in.Role)
	if !ok {
		return apierror.Validation("unknown role %q", in.Role)
	}

	ctx := c.UserContext()

	if err := s.accounts.Create(ctx, in.Username, in.Password, r.Privileges); err != nil {
		return err
	}

	if err := s.registry.Assign(ctx, in.Username, r.Name); err != nil {
		return err
	}

	log.Info().Str("user", in.Username).Str("role", r.Name).Msg("user created")

	return handler.OK(c, fmt.Sprintf("User %s created with role %s", in.Username, r.Name))
}

// Delete drops every host entry of the account and clears its role override.
func (s *Service) Delete(c *fiber.Ctx) error {
	username, err := usernameParam(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()

	dropped, err := s.accounts.Drop(ctx, username)
	if err != nil {
		return err
	}

	if err := s.registry.ClearAssignment(ctx, username); err != nil {
		return err
	}

	log.Info().Str("user", username).Int("hosts", dropped).Msg("user dropped")

	return handler.OK(c, fmt.Sprintf("User %s deleted", username))
}

// AssignRole pins a known role to an existing account.
func (s *Service) AssignRole(c *fiber.Ctx) error {
	username, err := usernameParam(c)
	if err != nil {
		return err
	}

	in := new(AssignRequest)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	if !s.registry.Exists(in.Role) {
		return apierror.Validation("unknown role %q", in.Role)
	}

	ctx := c.UserContext()

	exists, err := s.accounts.Exists(ctx, username)
	if err != nil {
		return err
	}

	if !exists {
		return apierror.NotFound("user %q not found", username)
	}

	if err := s.registry.Assign(ctx, username, in.Role); err != nil {
		return err
	}

	return c.JSON(AssignResponse{
		Response: handler.Response{
			Success: true,
			Message: fmt.Sprintf("Role %s assigned to %s", in.Role, username),
		},
		User: username,
		Role: in.Role,
	})
}
