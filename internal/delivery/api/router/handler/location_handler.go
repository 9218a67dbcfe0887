package handler

import (
	"log/slog"
	"net/http"

	"crossing/internal/delivery/api/response"
	"crossing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler receives position reports.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// IngestLocationRequest is one position report. Pointers keep 0 a valid value.
type IngestLocationRequest struct {
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
}

// Ingest handles POST /api/v1/locations
func (h *LocationHandler) Ingest(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req IngestLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.locationUC.Ingest(c.Request().Context(), userID, &usecase.IngestInput{
		Longitude: *req.Longitude,
		Latitude:  *req.Latitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, result)
}
