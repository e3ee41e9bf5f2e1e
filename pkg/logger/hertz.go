package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// hlog.FullLogger has a wide surface; every method funnels into log/logf.

func (h *HertzAdapter) Trace(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzAdapter) Debug(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzAdapter) Info(v ...interface{})   { h.log(slog.LevelInfo, v...) }
func (h *HertzAdapter) Notice(v ...interface{}) { h.log(slog.LevelInfo, v...) }
func (h *HertzAdapter) Warn(v ...interface{})   { h.log(slog.LevelWarn, v...) }
func (h *HertzAdapter) Error(v ...interface{})  { h.log(slog.LevelError, v...) }
func (h *HertzAdapter) Fatal(v ...interface{})  { h.log(slog.LevelError, v...) }

func (h *HertzAdapter) Tracef(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzAdapter) Debugf(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzAdapter) Infof(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzAdapter) Noticef(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzAdapter) Warnf(format string, v ...interface{}) {
	h.logf(slog.LevelWarn, format, v...)
}
func (h *HertzAdapter) Errorf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}
func (h *HertzAdapter) Fatalf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}

func (h *HertzAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelWarn, format, v...)
}
func (h *HertzAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}
func (h *HertzAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}

// SetLevel is a no-op; the slog level is fixed at Setup time.
func (h *HertzAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the slog output is fixed at Setup time.
func (h *HertzAdapter) SetOutput(writer io.Writer) {}
