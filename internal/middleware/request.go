package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextRequestID = "requestID"
	ContextLogger    = "logger"

	HeaderRequestID = "X-Request-ID"
)

// RequestLogger tags every request with an id and a child logger and
// logs the outcome once the handler returns.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		log := base.With(zap.String("request_id", id))
		c.Set(ContextRequestID, id)
		c.Set(ContextLogger, log)
		c.Header(HeaderRequestID, id)

		started := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Logger returns the request's logger, or the global one outside a
// request.
func Logger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ContextLogger); ok {
		if log, ok := l.(*zap.Logger); ok {
			return log
		}
	}
	return zap.L()
}

func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
