package log

import (
	"context"

	"github.com/on-the-ground/splaymemo/shared/helper"
	"go.uber.org/zap"
)

const handlerKey helper.ContextKey = "splaymemo_log_handler"

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is a single structured log message.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

type handler struct {
	logger *zap.Logger
}

func (h handler) handle(payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for k, v := range payload.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch payload.Level {
	case LogInfo:
		h.logger.Info(payload.Message, fields...)
	case LogWarn:
		h.logger.Warn(payload.Message, fields...)
	case LogError:
		h.logger.Error(payload.Message, fields...)
	case LogDebug:
		h.logger.Debug(payload.Message, fields...)
	default:
		h.logger.Info(payload.Message, fields...)
	}
}

// WithZapHandler registers logger as the log handler of the returned context.
// The teardown function syncs the logger and returns the parent context, which
// should be used for further operations.
func WithZapHandler(
	ctx context.Context,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	ctxWith := context.WithValue(ctx, handlerKey, handler{logger: logger})
	return ctxWith, func() context.Context {
		// stdout/stderr syncs fail on some platforms; nothing to do about it
		_ = logger.Sync()
		return ctx
	}
}

// Effect logs msg through the handler registered in ctx.
// Without a handler the message is dropped.
func Effect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	h, err := helper.GetTypedValueOf[handler](ctx, handlerKey)
	if err != nil {
		return
	}
	h.handle(LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

// Logger returns the zap logger registered in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	h, err := helper.GetTypedValueOf[handler](ctx, handlerKey)
	if err != nil {
		return zap.NewNop()
	}
	return h.logger
}
