// Package role provides the handlers defining and listing custom roles.
package role

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler"
)

const (
	// Path is the base path for custom roles.
	Path = handler.RootPath + "roles"
)

type (
	// Item is the wire form of a role.
	Item struct {
		Name        string   `json:"name"`
		Privileges  []string `json:"privileges"`
		Description string   `json:"description"`
	}

	// CreateRequest is the body of POST /roles.
	CreateRequest struct {
		RoleName    string   `json:"roleName"    validate:"required"`
		Privileges  []string `json:"privileges"  validate:"required,min=1"`
		Description string   `json:"description"`
	}

	// CreateResponse confirms a role definition.
	CreateResponse struct {
		handler.Response
		Role Item `json:"role"`
	}
)

// Service serves the role endpoints.
type Service struct {
	handler.Service
	cfg      *config.Config
	registry *role.Registry
}

// Init registers routes. The account backend is not used by this handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ handler.Accounts, registry *role.Registry) error {
	if app == nil || cfg == nil || registry == nil {
		return fmt.Errorf("role handler: %s", handler.ErrNilDepsFatalLogMsg)
	}

	s.cfg = cfg
	s.registry = registry

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
	})

	return nil
}

func toItem(r role.Role) Item {
	return Item{
		Name:        r.Name,
		Privileges:  privilege.Strings(r.Privileges),
		Description: r.Description,
	}
}

// List returns the custom roles sorted by name.
func (s *Service) List(c *fiber.Ctx) error {
	custom := s.registry.ListCustom()

	items := make([]Item, 0, len(custom))
	for _, r := range custom {
		items = append(items, toItem(r))
	}

	return c.JSON(items)
}

// Create defines or overwrites a custom role from sanitized privileges.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(CreateRequest)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	privs := privilege.SanitizeList(in.Privileges)
	if len(privs) == 0 {
		return apierror.Validation("no valid privileges in %q", in.Privileges)
	}

	r, err := s.registry.Define(in.RoleName, privs, in.Description)
	if err != nil {
		return err
	}

	log.Info().Str("role", r.Name).Str("privileges", privilege.Join(r.Privileges)).Msg("custom role defined")

	return c.JSON(CreateResponse{
		Response: handler.Response{
			Success: true,
			Message: fmt.Sprintf("Role %s created", r.Name),
		},
		Role: toItem(r),
	})
}
