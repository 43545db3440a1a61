package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// Health probes fire every few seconds. Only the first success per
// path is logged; failures are always logged at WARN.
var healthPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestLog returns Echo middleware that logs one structured line per
// request. A request ID is generated when the client didn't send one
// and echoed back in the response header.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		probeOK  = map[string]bool{}
		logProbe func(path string, status int) bool
	)

	logProbe = func(path string, status int) bool {
		mu.Lock()
		defer mu.Unlock()

		if status >= 200 && status < 300 {
			if probeOK[path] {
				return false
			}
			probeOK[path] = true
			return true
		}

		probeOK[path] = false
		return true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			if healthPaths[path] && !logProbe(path, status) {
				return err
			}

			level := slog.LevelInfo
			if healthPaths[path] && (status < 200 || status >= 300) {
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"request_id", reqID,
			)

			return err
		}
	}
}
