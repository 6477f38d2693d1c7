package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// gormLogger routes gorm's log output through zerolog so database logs
// carry the same format and level filtering as the rest of the backend.
type gormLogger struct {
	log zerolog.Logger

	// Queries slower than this are logged as warnings.
	slowThreshold time.Duration
}

// LogMode is a no-op, levels are controlled through zerolog.
func (l *gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

// Trace logs a finished query with its duration and row count. Missing rows
// are not logged as errors here since callers turn them into not-found
// responses anyway.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.log.Debug()
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.log.Error().Err(err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		event = l.log.Warn()
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("Database")
}
