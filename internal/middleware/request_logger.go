package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/logger"
)

// RequestLogger logs every request to the console and, when sink is not nil, persists it.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := levelForStatus(statusCode)

		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()

		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if sink == nil {
			return
		}

		entry := newEntry(c, level, "HTTP request")
		entry.StatusCode = statusCode
		entry.Duration = latency.Milliseconds()
		sink.Log(entry)
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

// newEntry fills the request and caller fields shared by request and audit entries.
func newEntry(c *gin.Context, level, message string) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if claims, ok := GetClaims(c); ok {
		entry.UserID = claims.UserID.Hex()
		entry.UserEmail = claims.Email
	}
	return entry
}
