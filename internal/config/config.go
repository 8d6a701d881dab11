// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigJSON names the environment variable holding a JSON config override.
const EnvConfigJSON = "GO_MYSQL_ADMIN_CONFIG_JSON"

const defaultShutDownTime = 5

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(filepath.Join(path, "main.toml"), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the settings the daemon can not start without and fill defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineMySQL
	}

	if c.DB.GormEngine != EngineMySQL {
		return errors.Wrap(ErrAdminDBMustBeMySQL, invalidErrMessage)
	}

	if c.Store.Driver == "" {
		c.Store.Driver = StoreMemory
	}

	switch c.Store.Driver {
	case StoreMemory, StoreRedis, StoreMySQL:
	case StoreGorm:
		if c.Store.DB.GormEngine == "" {
			c.Store.DB.GormEngine = EngineMySQL
		}

		if !knownEngine(c.Store.DB.GormEngine) {
			return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.Store.DB.GormEngine)
		}
	default:
		return errors.Wrapf(ErrUnknownStoreDriver, "%s: %q", invalidErrMessage, c.Store.Driver)
	}

	return nil
}

func knownEngine(engine string) bool {
	switch engine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
		return true
	default:
		return false
	}
}
