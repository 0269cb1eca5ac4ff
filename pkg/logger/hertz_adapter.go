package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes Hertz framework logs through the service's slog
// logger, so server internals and application logs share one format.
type HertzSlogAdapter struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewHertzSlogAdapter wraps the given slog logger for use with
// hlog.SetLogger.
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	return &HertzSlogAdapter{logger: logger, level: level}
}

// toSlogLevel folds Hertz's seven levels onto slog's four. Trace maps to
// Debug, Notice to Info, Fatal to Error; the process is not terminated.
func toSlogLevel(level hlog.Level) slog.Level {
	switch level {
	case hlog.LevelTrace, hlog.LevelDebug:
		return slog.LevelDebug
	case hlog.LevelInfo, hlog.LevelNotice:
		return slog.LevelInfo
	case hlog.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// logf is the single funnel for all interface methods. A nil format means
// the variadic args are printed as-is.
func (a *HertzSlogAdapter) logf(ctx context.Context, level hlog.Level, format *string, v ...interface{}) {
	lv := toSlogLevel(level)
	if lv < a.level.Level() {
		return
	}
	var msg string
	if format != nil {
		msg = fmt.Sprintf(*format, v...)
	} else {
		msg = fmt.Sprint(v...)
	}
	a.logger.Log(ctx, lv, msg)
}

func (a *HertzSlogAdapter) Trace(v ...interface{})  { a.logf(context.Background(), hlog.LevelTrace, nil, v...) }
func (a *HertzSlogAdapter) Debug(v ...interface{})  { a.logf(context.Background(), hlog.LevelDebug, nil, v...) }
func (a *HertzSlogAdapter) Info(v ...interface{})   { a.logf(context.Background(), hlog.LevelInfo, nil, v...) }
func (a *HertzSlogAdapter) Notice(v ...interface{}) { a.logf(context.Background(), hlog.LevelNotice, nil, v...) }
func (a *HertzSlogAdapter) Warn(v ...interface{})   { a.logf(context.Background(), hlog.LevelWarn, nil, v...) }
func (a *HertzSlogAdapter) Error(v ...interface{})  { a.logf(context.Background(), hlog.LevelError, nil, v...) }
func (a *HertzSlogAdapter) Fatal(v ...interface{})  { a.logf(context.Background(), hlog.LevelFatal, nil, v...) }

func (a *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelTrace, &format, v...)
}

func (a *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelDebug, &format, v...)
}

func (a *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelInfo, &format, v...)
}

func (a *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelNotice, &format, v...)
}

func (a *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelWarn, &format, v...)
}

func (a *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelError, &format, v...)
}

func (a *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	a.logf(context.Background(), hlog.LevelFatal, &format, v...)
}

func (a *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelTrace, &format, v...)
}

func (a *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelDebug, &format, v...)
}

func (a *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelInfo, &format, v...)
}

func (a *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelNotice, &format, v...)
}

func (a *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelWarn, &format, v...)
}

func (a *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelError, &format, v...)
}

func (a *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	a.logf(ctx, hlog.LevelFatal, &format, v...)
}

// SetLevel gates framework logs before they reach the slog handler, which
// applies its own configured level on top.
func (a *HertzSlogAdapter) SetLevel(level hlog.Level) {
	a.level.Set(toSlogLevel(level))
}

// SetOutput is a no-op; the slog handler owns the writer.
func (a *HertzSlogAdapter) SetOutput(writer io.Writer) {}
