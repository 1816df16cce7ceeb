package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// dbLogger forwards gorm's log output to zerolog so that query logs end up
// in the same stream as everything else.
type dbLogger struct {
	log zerolog.Logger
}

func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.log.Info().Msgf(s, args...)
}

func (l *dbLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.log.Warn().Msgf(s, args...)
}

func (l *dbLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.log.Error().Msgf(s, args...)
}

func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": time.Since(begin),
	}

	// Not-found errors reach the client as a 404, they are not logged as
	// database failures
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		l.log.Error().Err(err).Fields(fields).Msg("database query failed")
		return
	}

	l.log.Debug().Fields(fields).Msg("database query")
}
