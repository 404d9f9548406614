package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/accountsim/accountsim/internal/api/fake"
	"github.com/accountsim/accountsim/internal/logger"
)

// Logging is a middleware that logs every fake request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request, tagged
// with a per-request ID.
func (l *Logging) Handle(next fake.HandlerFunc) fake.HandlerFunc {
	return func(ctx context.Context, req fake.Request) fake.Response {
		start := time.Now()
		requestID := uuid.NewString()

		l.logger.Info("request started",
			"request_id", requestID,
			"method", req.Method,
			"path", req.Path)

		resp := next(ctx, req)

		duration := time.Since(start)

		l.logger.Info("request completed",
			"request_id", requestID,
			"method", req.Method,
			"path", req.Path,
			"duration_ms", duration.Milliseconds(),
			"status", resp.Status)

		if resp.Status >= 500 {
			l.logger.Error("request failed",
				"request_id", requestID,
				"method", req.Method,
				"path", req.Path,
				"status", resp.Status,
				"error", resp.ErrorMessage())
		}

		return resp
	}
}
