package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as a warning.
const slowQuery = 200 * time.Millisecond

// logger writes gorm logs to zerolog. Queries are logged at debug level,
// slow ones as warnings and failed ones as errors.
type logger struct {
	Logger zerolog.Logger
	level  gorm_logger.LogLevel
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	return &logger{Logger: l.Logger, level: level}
}

func (l *logger) silent() bool {
	return l.level == gorm_logger.Silent
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if !l.silent() {
		l.Logger.Info().Str("component", "gorm").Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if !l.silent() {
		l.Logger.Warn().Str("component", "gorm").Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if !l.silent() {
		l.Logger.Error().Str("component", "gorm").Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.silent() {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	event := func(e *zerolog.Event) *zerolog.Event {
		return e.Str("component", "gorm").Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed)
	}

	// Missing records are reported to the client, they are not failures of the database
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound) {
		event(l.Logger.Error()).Err(err).Msg("query failed")
		return
	}

	if elapsed > slowQuery {
		event(l.Logger.Warn()).Msg("slow query")
		return
	}

	event(l.Logger.Debug()).Msg("query")
}
