package assignment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	controller "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db/controller/assignment"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db/models"
)

// Gorm keeps assignments in the role_assignments table.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the role_assignments table and returns the store.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	if err := db.AutoMigrate(&models.RoleAssignment{}); err != nil {
		return nil, err
	}

	return &Gorm{db: db}, nil
}

// Get implements role.AssignmentStore.
func (g *Gorm) Get(ctx context.Context, username string) (string, bool, error) {
	a, err := controller.Get(g.db.WithContext(ctx), username)
	if errors.Is(err, controller.ErrAssignmentNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return a.Role, true, nil
}

// Set implements role.AssignmentStore.
func (g *Gorm) Set(ctx context.Context, username, role string) error {
	_, err := controller.Set(g.db.WithContext(ctx), username, role)
	return err
}

// Delete implements role.AssignmentStore.
func (g *Gorm) Delete(ctx context.Context, username string) error {
	err := controller.Delete(g.db.WithContext(ctx), username)
	if errors.Is(err, controller.ErrAssignmentNotFound) {
		return nil
	}

	return err
}

// Close implements Store.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
