package assignment

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps assignments in process memory. They are lost on restart.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates an empty in-memory store. Entries never expire.
func NewMemory() *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, 0)}
}

// Get implements role.AssignmentStore.
func (m *Memory) Get(_ context.Context, username string) (string, bool, error) {
	v, ok := m.c.Get(username)
	if !ok {
		return "", false, nil
	}

	r, ok := v.(string)

	return r, ok, nil
}

// Set implements role.AssignmentStore.
func (m *Memory) Set(_ context.Context, username, role string) error {
	m.c.Set(username, role, gocache.NoExpiration)
	return nil
}

// Delete implements role.AssignmentStore.
func (m *Memory) Delete(_ context.Context, username string) error {
	m.c.Delete(username)
	return nil
}

// Close implements Store.
func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}
