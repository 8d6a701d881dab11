package models

import "time"

// RoleAssignment records the role an administrator explicitly chose for a
// MySQL account. It overrides role inference for that username.
type RoleAssignment struct {
	// ID is the unique identifier for the assignment.
	ID uint64 `gorm:"primaryKey"`
	// Username is the MySQL user name the role is assigned to.
	Username string `gorm:"unique;size:100;not null"`
	// Role is the name of the assigned role.
	Role string `gorm:"size:100;not null"`
	// CreatedAt is the timestamp when the assignment was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the assignment was last changed (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the RoleAssignment model.
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
