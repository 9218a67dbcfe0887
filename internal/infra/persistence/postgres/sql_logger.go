package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlLogger routes GORM output to slog. Statements are written through the
// logger found in the context, so a pass's queries carry its epoch_id and an
// HTTP request's queries carry its request_id.
type sqlLogger struct {
	base              *slog.Logger
	level             logger.LogLevel
	slowThreshold     time.Duration
	logRecordNotFound bool
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &sqlLogger{
		base:  base,
		level: logger.Warn,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.SQLLog != nil {
		l.slowThreshold = cfg.SQLLog.SlowThreshold
		l.logRecordNotFound = cfg.SQLLog.LogRecordNotFound
	}

	return l
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) message(ctx context.Context, need logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < need {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "SQL "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level a statement is logged at, if at all.
func (l *sqlLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && l.level >= logger.Error && (l.logRecordNotFound || !errors.Is(err, gorm.ErrRecordNotFound)):
		return slog.LevelError, "SQL query failed", true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "SQL slow query", true
	case l.level >= logger.Info:
		return slog.LevelInfo, "SQL query", true
	}

	return 0, "", false
}

func (l *sqlLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
