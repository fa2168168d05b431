package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"houses/config"
	deliverycontext "houses/internal/delivery/context"
	"houses/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through slog. Queries are tagged with the
// request id carried on the context so store calls line up with access logs.
type gormLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newGormLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormLogger) printf(ctx context.Context, required logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < required {
		return
	}

	l.base.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries at error, slow queries at warn, and everything
// else only at info level. A missing row is a normal lookup result.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= logger.Error:
		attrs := append(queryAttrs(ctx, fc, elapsed), slog.String("error", err.Error()))
		l.base.LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		attrs := append(queryAttrs(ctx, fc, elapsed), slog.Duration("threshold", l.slow))
		l.base.LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.base.LogAttrs(ctx, slog.LevelInfo, "Query", queryAttrs(ctx, fc, elapsed)...)
	}
}

func queryAttrs(ctx context.Context, fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	attrs := []slog.Attr{
		slog.String("statement", statementKind(sql)),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	return attrs
}

// statementKind returns the leading SQL keyword, e.g. "SELECT".
func statementKind(sql string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToUpper(keyword)
}
