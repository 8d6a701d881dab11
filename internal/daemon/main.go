// Package daemon wires configuration, storage and the web service together.
package daemon

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/assignment"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/db"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/mysql"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web"
)

// ErrNilConfig is returned when the daemon is created without a config.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	store      assignment.Store
	webService *web.Service
}

// Start serves http until SIGINT or SIGTERM, then shuts down gracefully and
// releases the connections.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("store", d.cfg.Store.Driver).Msg("starting web service")

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	return d.Close()
}

// Close releases the assignment store and the admin database connection.
func (d *Daemon) Close() error {
	var result error

	if d.store != nil {
		if err := d.store.Close(); err != nil {
			result = errors.Wrap(err, "failed to close assignment store")
		}
	}

	if d.db != nil {
		sqlDB, err := d.db.DB()
		if err == nil {
			err = sqlDB.Close()
		}

		if err != nil && result == nil {
			result = errors.Wrap(err, "failed to close admin database")
		}
	}

	return result
}

// New creates a new Daemon instance with the provided configuration.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	adminDB, err := db.Open(cfg.DB, cfg.Log)
	if err != nil {
		return nil, err
	}

	d := &Daemon{cfg: cfg, db: adminDB}

	d.store, err = assignment.New(ctx, cfg.Store, cfg.Log)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	registry, err := role.NewRegistry(d.store)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	d.webService, err = web.New(cfg, mysql.New(adminDB), registry)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	return d, nil
}
