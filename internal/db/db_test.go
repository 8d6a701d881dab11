package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger"
)

func TestDialector(t *testing.T) {
	testCases := []struct {
		engine  string
		name    string
		wantErr bool
	}{
		{engine: config.EngineMySQL, name: "mysql"},
		{engine: "", name: "mysql"},
		{engine: config.EnginePostgres, name: "postgres"},
		{engine: config.EngineSQLite, name: "sqlite"},
		{engine: "oracle", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.engine, func(t *testing.T) {
			d, err := Dialector(config.DB{GormEngine: tc.engine, Host: "localhost", Port: 1})
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownEngine)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}
}

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open(config.DB{GormEngine: config.EngineSQLite}, logger.Log{})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
