package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one line per request through the request-scoped
// logger. Server errors are always logged, everything else only in debug mode.
type AccessLogMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Render the error here so the logged status is the one sent.
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		if !m.debug && status < http.StatusInternalServerError {
			return nil
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("path", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
			LogAttrs(req.Context(), level, "HTTP request", attrs...)

		return nil
	}
}
