package utils

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

type errorLogWriter struct {
	gin.ResponseWriter
	gc  *gin.Context
	log *slog.Logger
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		w.log.Debug("error response",
			"request_id", w.gc.GetString(RequestIDKey),
			"status", status,
			"body", string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware tags each request with an id and logs the bodies of
// error responses. Doesn't work with GZIP.
func ErrorLogMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RequestIDKey, uuid.NewString())
		c.Writer = &errorLogWriter{gc: c, ResponseWriter: c.Writer, log: log}
		c.Next()
	}
}
