package handler

import (
	"log/slog"
	"net/http"

	"crossing/internal/delivery/api/response"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InternalHandlerParams holds dependencies for InternalHandler, injected by Fx.
type InternalHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	PairUC     usecase.PairUsecase
	Logger     *slog.Logger
}

// InternalHandler serves the service-to-service endpoints: manual passes
// and the notifications of the account domain.
type InternalHandler struct {
	matchingUC usecase.MatchingUsecase
	pairUC     usecase.PairUsecase
	logger     *slog.Logger
}

// NewInternalHandler is the constructor for InternalHandler
func NewInternalHandler(params InternalHandlerParams) *InternalHandler {
	return &InternalHandler{
		matchingUC: params.MatchingUC,
		pairUC:     params.PairUC,
		logger:     params.Logger,
	}
}

// PairRequest names two users; UserID acts first (blocker, unblocker).
type PairRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	OtherUserID uuid.UUID `json:"other_user_id" validate:"required"`
}

// TagPairRequest records a match under another feature.
type TagPairRequest struct {
	PairRequest
	Category string `json:"category" validate:"required,max=32"`
}

// RunPass handles POST /internal/v1/passes
func (h *InternalHandler) RunPass(c echo.Context) error {
	report, err := h.matchingUC.RunPass(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, passReportResponse{
		EpochID:    report.EpochID,
		Groups:     report.Groups,
		Members:    report.Members,
		Events:     report.Events,
		Flushed:    report.Flushed,
		Pairs:      report.Pairs,
		DurationMS: report.Duration.Milliseconds(),
	})
}

type passReportResponse struct {
	EpochID    int64 `json:"epoch_id"`
	Groups     int   `json:"groups"`
	Members    int   `json:"members"`
	Events     int   `json:"events"`
	Flushed    int   `json:"flushed"`
	Pairs      int   `json:"pairs"`
	DurationMS int64 `json:"duration_ms"`
}

// Block handles POST /internal/v1/pairs/block
func (h *InternalHandler) Block(c echo.Context) error {
	var req PairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.pairUC.OnBlocked(c.Request().Context(), req.UserID, req.OtherUserID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Unblock handles POST /internal/v1/pairs/unblock
func (h *InternalHandler) Unblock(c echo.Context) error {
	var req PairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.pairUC.OnUnblocked(c.Request().Context(), req.UserID, req.OtherUserID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Tag handles POST /internal/v1/pairs/tag
func (h *InternalHandler) Tag(c echo.Context) error {
	var req TagPairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.pairUC.TagCategory(c.Request().Context(), req.UserID, req.OtherUserID, req.Category); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteUser handles DELETE /internal/v1/users/:userId
func (h *InternalHandler) DeleteUser(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	if err := h.pairUC.OnAccountDeleted(c.Request().Context(), userID); err != nil {
		return err
	}

	h.logger.Info("Account data purged", slog.String("user_id", userID.String()))

	return response.NoContent(c)
}
