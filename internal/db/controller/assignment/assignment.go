// Package assignment provides CRUD operations for stored role assignments.
package assignment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db/models"
)

const (
	usernameQueryPattern = "username = ?"
)

var (
	// ErrAssignmentNotFound is returned when no assignment exists for a username.
	ErrAssignmentNotFound = errors.New("role assignment not found")
	// ErrUsernameEmpty is returned when a username is empty.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrRoleEmpty is returned when attempting to store an empty role name.
	ErrRoleEmpty = errors.New("role cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the assignment of username.
func Get(db *gorm.DB, username string) (*models.RoleAssignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	var assignment models.RoleAssignment
	result := db.Where(usernameQueryPattern, username).First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, result.Error
	}

	return &assignment, nil
}

// GetAll retrieves all assignments ordered by username.
func GetAll(db *gorm.DB) ([]models.RoleAssignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var assignments []models.RoleAssignment
	result := db.Order("username ASC").Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

// Set creates or replaces the assignment of username (upsert operation).
func Set(db *gorm.DB, username, role string) (*models.RoleAssignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}
	if role == "" {
		return nil, ErrRoleEmpty
	}

	var assignment models.RoleAssignment
	result := db.Where(usernameQueryPattern, username).First(&assignment)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		assignment = models.RoleAssignment{
			Username: username,
			Role:     role,
		}

		if err := db.Create(&assignment).Error; err != nil {
			return nil, err
		}

		return &assignment, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	assignment.Role = role
	result = db.Save(&assignment)
	if result.Error != nil {
		return nil, result.Error
	}

	return &assignment, nil
}

// Delete removes the assignment of username.
func Delete(db *gorm.DB, username string) error {
	if db == nil {
		return ErrDBNil
	}
	if username == "" {
		return ErrUsernameEmpty
	}

	result := db.Where(usernameQueryPattern, username).Delete(&models.RoleAssignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
