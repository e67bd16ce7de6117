package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"tutoria/config"
	deliverycontext "tutoria/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// bcryptHashPattern matches password hashes interpolated into logged statements.
var bcryptHashPattern = regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}`)

const redacted = "[REDACTED]"

// gormSlogLogger routes gorm output through the request-scoped logger, so statements
// carry request_id and user_id when they run inside a request.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, l.logger)
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "Database message",
		slog.String("message", redact(fmt.Sprintf(msg, args...))),
	)
}

// Trace logs failed statements as errors, except lookups that found nothing and
// unique violations, which the repository turns into domain errors.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level >= logger.Info {
			l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Database lookup found no rows", queryAttrs(sqlAndRowsFn, elapsed)...)
		}
	case err != nil && isUniqueConstraintViolation(err):
		if l.level >= logger.Warn {
			l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Database unique constraint rejected statement",
				append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
		}
	case err != nil:
		if l.level >= logger.Error {
			l.log(ctx).LogAttrs(ctx, slog.LevelError, "Database statement failed",
				append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Database slow statement",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Database statement", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", redact(sql)),
	}
}

func redact(s string) string {
	return bcryptHashPattern.ReplaceAllString(s, redacted)
}
