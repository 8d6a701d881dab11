package assignment

import (
	"context"
	"time"

	mysqlstorage "github.com/gofiber/storage/mysql/v2"
)

const defaultKVTable = "role_assignments_kv"

// kvStorage is the part of the gofiber storage interface the KV store needs.
type kvStorage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Close() error
}

// KV keeps assignments in a gofiber key-value storage.
type KV struct {
	storage kvStorage
}

// NewKV wraps storage.
func NewKV(storage kvStorage) *KV {
	return &KV{storage: storage}
}

// newMySQLStorage creates a MySQL backed key-value table. It panics when
// the server is unreachable, like every gofiber storage does.
func newMySQLStorage(connectionURI, table string) kvStorage {
	if table == "" {
		table = defaultKVTable
	}

	return mysqlstorage.New(mysqlstorage.Config{
		ConnectionURI: connectionURI,
		Table:         table,
	})
}

// Get implements role.AssignmentStore.
func (k *KV) Get(_ context.Context, username string) (string, bool, error) {
	val, err := k.storage.Get(username)
	if err != nil {
		return "", false, err
	}

	if len(val) == 0 {
		return "", false, nil
	}

	return string(val), true, nil
}

// Set implements role.AssignmentStore.
func (k *KV) Set(_ context.Context, username, role string) error {
	return k.storage.Set(username, []byte(role), 0)
}

// Delete implements role.AssignmentStore.
func (k *KV) Delete(_ context.Context, username string) error {
	return k.storage.Delete(username)
}

// Close implements Store.
func (k *KV) Close() error {
	return k.storage.Close()
}
