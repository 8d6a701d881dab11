package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrAdminDBMustBeMySQL error if the managed server is not configured as mysql.
	ErrAdminDBMustBeMySQL = errors.New("toml config db.gormengine must be mysql")

	// ErrUnknownStoreDriver error if store.driver is not supported.
	ErrUnknownStoreDriver = errors.New("toml config store.driver must be memory, redis, mysql or gorm")

	// ErrUnknownGormEngine error if store.db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("toml config store.db.gormengine must be mysql, postgres or sqlite")
)
