// Package gorm routes gorm's SQL logging through zerolog.
package gorm

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger"
)

const defaultSlowThreshold = 500 * time.Millisecond

// secretPattern matches the password literal of CREATE USER / ALTER USER statements.
var secretPattern = regexp.MustCompile(`(?i)(IDENTIFIED\s+BY\s+)'(?:[^'\\]|\\.|'')*'`)

// Logger implements gorm's logger.Interface on top of the global zerolog logger.
type Logger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// New creates a gorm logger. With cfg.LogSQL every statement is logged at debug level,
// otherwise only errors and slow statements are.
func New(cfg logger.Log) *Logger {
	level := gormlogger.Warn
	if cfg.LogSQL {
		level = gormlogger.Info
	}

	return &Logger{
		level:         level,
		slowThreshold: defaultSlowThreshold,
	}
}

// Redact replaces password literals in sql with a placeholder. Account
// statements run outside gorm reach it through Trace as well.
func Redact(sql string) string {
	return secretPattern.ReplaceAllString(sql, "${1}'***'")
}

// LogMode implements gormlogger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.level = level

	return &nl
}

// Info implements gormlogger.Interface.
func (l *Logger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		log.Info().Msgf(msg, data...)
	}
}

// Warn implements gormlogger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		log.Warn().Msgf(msg, data...)
	}
}

// Error implements gormlogger.Interface.
func (l *Logger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		log.Error().Msgf(msg, data...)
	}
}

// Trace implements gormlogger.Interface.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.Error().Err(err).Str("sql", Redact(sql)).Int64("rows", rows).Dur("elapsed", elapsed).Msg("sql failed")
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		log.Warn().Str("sql", Redact(sql)).Int64("rows", rows).Dur("elapsed", elapsed).Msg("slow sql")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		log.Debug().Str("sql", Redact(sql)).Int64("rows", rows).Dur("elapsed", elapsed).Msg("sql")
	}
}
