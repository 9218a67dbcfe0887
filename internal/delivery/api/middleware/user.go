package middleware

import (
	deliverycontext "crossing/internal/delivery/context"
	domainerrors "crossing/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireUser rejects requests whose X-User-Id was missing or not a UUID.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

// GetUserID returns the caller recorded by the request context middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.UserIDFrom(c.Request().Context())
}
