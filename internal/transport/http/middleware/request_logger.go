// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags each request with a UUID unless the client already sent X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}

// RequestLogger logs HTTP requests with method, path, status, acting user and duration.
// Logged strings are copied since fiber reuses request buffers.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		status := responseStatus(c, err)
		fields := []any{
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.OriginalURL()),
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", utils.CopyString(reqID),
		}
		if uid := c.Get("X-User-Id"); uid != "" {
			fields = append(fields, "user_id", utils.CopyString(uid))
		}

		if status >= fiber.StatusInternalServerError {
			log.Warnw("http", fields...)
		} else {
			log.Infow("http", fields...)
		}
		return err
	}
}

// responseStatus returns the status the client will see. A returned error is
// rendered by the app's ErrorHandler after the middleware chain unwinds.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
