package rmux

import (
	"time"

	"github.com/rohanthewiz/rmux/consts"
	"go.uber.org/zap"
)

// RequestInfo returns middleware giving basic request / response stats:
// one log line per request with method, path, status, and duration.
// Severity scales with the status class - server errors log at error
// level, client errors at warn, everything else at info.
func RequestInfo(logger *zap.Logger) Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx Context) (any, error) {
		start := time.Now()

		if err := ctx.Next(); err != nil {
			logger.Error("request failed",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err))
			return nil, err
		}

		status := ctx.Response().Status()
		fields := []zap.Field{
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}

		switch {
		case status >= consts.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= consts.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}

		return nil, nil
	}
}
