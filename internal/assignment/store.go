// Package assignment provides the key-value stores that keep explicit
// username -> role overrides. The driver is picked by the Store config.
package assignment

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db/dsn"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
)

// ErrUnknownDriver is returned for an unsupported store driver.
var ErrUnknownDriver = errors.New("unknown assignment store driver")

// Store is a role.AssignmentStore that holds resources.
type Store interface {
	role.AssignmentStore

	// Close releases the underlying connection.
	Close() error
}

// New creates the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.Store, logCfg logger.Log) (Store, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return NewMemory(), nil
	case config.StoreRedis:
		return NewRedis(ctx, cfg)
	case config.StoreMySQL:
		return NewKV(newMySQLStorage(dsn.Create(cfg.DB), cfg.Table)), nil
	case config.StoreGorm:
		gdb, err := db.Open(cfg.DB, logCfg)
		if err != nil {
			return nil, err
		}

		return ownGorm(gdb)
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.Driver)
	}
}

// ownGorm builds a Gorm store on a connection New opened itself. The
// connection is closed when the migration fails, since no caller holds it.
func ownGorm(gdb *gorm.DB) (Store, error) {
	store, err := NewGorm(gdb)
	if err != nil {
		if sqlDB, dbErr := gdb.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}

		return nil, err
	}

	return store, nil
}
