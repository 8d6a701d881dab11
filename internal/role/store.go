package role

import (
	"context"
)

// AssignmentStore keeps the explicit username -> role overrides.
// Implementations live in internal/assignment.
type AssignmentStore interface {
	// Get returns the override for username; found is false when none exists.
	Get(ctx context.Context, username string) (role string, found bool, err error)
	// Set records or replaces the override for username.
	Set(ctx context.Context, username, role string) error
	// Delete removes the override. Deleting a missing key is not an error.
	Delete(ctx context.Context, username string) error
}
