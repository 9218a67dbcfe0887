package handler

import (
	"log/slog"
	"net/http"

	"crossing/internal/delivery/api/response"
	"crossing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrivacyHandlerParams holds dependencies for PrivacyHandler, injected by Fx.
type PrivacyHandlerParams struct {
	fx.In

	PrivacyUC usecase.PrivacyUsecase
	Logger    *slog.Logger
}

// PrivacyHandler manages privacy zones and the quiet window.
type PrivacyHandler struct {
	privacyUC usecase.PrivacyUsecase
	logger    *slog.Logger
}

// NewPrivacyHandler is the constructor for PrivacyHandler
func NewPrivacyHandler(params PrivacyHandlerParams) *PrivacyHandler {
	return &PrivacyHandler{
		privacyUC: params.PrivacyUC,
		logger:    params.Logger,
	}
}

// QuietWindowRequest represents the request body for the quiet window
type QuietWindowRequest struct {
	Start string `json:"start" validate:"required_with=End,omitempty,len=5"`
	End   string `json:"end" validate:"required_with=Start,omitempty,len=5"`
}

// AddZone handles POST /api/v1/privacy/zones
func (h *PrivacyHandler) AddZone(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.AddZoneInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	zone, err := h.privacyUC.AddZone(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, zone)
}

// ListZones handles GET /api/v1/privacy/zones
func (h *PrivacyHandler) ListZones(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	zones, err := h.privacyUC.ListZones(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, zones)
}

// DeleteZone handles DELETE /api/v1/privacy/zones/:id
func (h *PrivacyHandler) DeleteZone(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	zoneID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.privacyUC.DeleteZone(c.Request().Context(), userID, zoneID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// SetQuietWindow handles PUT /api/v1/privacy/quiet-window
func (h *PrivacyHandler) SetQuietWindow(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req QuietWindowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.privacyUC.SetQuietWindow(c.Request().Context(), userID, &usecase.QuietWindowInput{
		Start: req.Start,
		End:   req.End,
	}); err != nil {
		return err
	}

	return response.NoContent(c)
}
