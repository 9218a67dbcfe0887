package middleware

import (
	"log/slog"

	deliverycontext "crossing/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware assigns the request id, picks up the gateway
// caller id and stores a logger carrying both in the request context.
type RequestContextMiddleware struct {
	logger *slog.Logger
}

func NewRequestContextMiddleware(logger *slog.Logger) *RequestContextMiddleware {
	return &RequestContextMiddleware{logger: logger}
}

func (m *RequestContextMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		attrs := []any{slog.String("request_id", requestID)}

		// An unparsable id is left for RequireUser to reject.
		if userID, err := uuid.Parse(req.Header.Get(deliverycontext.HeaderXUserID)); err == nil && userID != uuid.Nil {
			ctx = deliverycontext.WithUserID(ctx, userID)
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}

		ctx = deliverycontext.WithLogger(ctx, m.logger.With(attrs...))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
