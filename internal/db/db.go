// Package db opens gorm connections for the configured engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db/dsn"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger"
	gormlog "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger/adapter/gorm"
)

// ErrUnknownEngine is returned for a gorm engine that is not supported.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Dialector returns the gorm dialector for dbCfg.GormEngine.
func Dialector(dbCfg config.DB) (gorm.Dialector, error) {
	switch dbCfg.GormEngine {
	case config.EngineMySQL, "":
		return gormmysql.Open(dsn.Create(dbCfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(dbCfg)), nil
	case config.EngineSQLite:
		path := dbCfg.Path
		if path == "" {
			path = ":memory:"
		}

		return sqlite.Open(path), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", dbCfg.GormEngine)
	}
}

// Open connects to the database described by dbCfg.
func Open(dbCfg config.DB, logCfg logger.Log) (*gorm.DB, error) {
	dialector, err := Dialector(dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlog.New(logCfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", dbCfg.GormEngine)
	}

	return db, nil
}
