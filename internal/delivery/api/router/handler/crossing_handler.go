package handler

import (
	"log/slog"
	"net/http"

	"crossing/internal/delivery/api/response"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/errors"
	"crossing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CrossingHandlerParams holds dependencies for CrossingHandler, injected by Fx.
type CrossingHandlerParams struct {
	fx.In

	RankingUC       usecase.RankingUsecase
	HiddenHistoryUC usecase.HiddenHistoryUsecase
	Logger          *slog.Logger
}

// CrossingHandler serves the ranked crossing list and per-counterpart trails.
type CrossingHandler struct {
	rankingUC       usecase.RankingUsecase
	hiddenHistoryUC usecase.HiddenHistoryUsecase
	logger          *slog.Logger
}

// NewCrossingHandler is the constructor for CrossingHandler
func NewCrossingHandler(params CrossingHandlerParams) *CrossingHandler {
	return &CrossingHandler{
		rankingUC:       params.RankingUC,
		hiddenHistoryUC: params.HiddenHistoryUC,
		logger:          params.Logger,
	}
}

// List handles GET /api/v1/crossings
func (h *CrossingHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	query, err := bindRankingQuery(c)
	if err != nil {
		return err
	}

	page, err := h.rankingUC.List(c.Request().Context(), userID, query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, page)
}

// Trail handles GET /api/v1/crossings/:otherUserId/trail
func (h *CrossingHandler) Trail(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	otherUserID, err := uuidParam(c, "otherUserId")
	if err != nil {
		return err
	}

	days, err := h.hiddenHistoryUC.Trail(c.Request().Context(), userID, otherUserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, days)
}

// bindRankingQuery reads the optional query parameters; absent ages stay nil.
func bindRankingQuery(c echo.Context) (*usecase.RankingQuery, error) {
	query := &usecase.RankingQuery{}
	binder := echo.QueryParamsBinder(c).
		String("sort", &query.Sort).
		Int("page", &query.Page).
		String("gender", &query.Gender)

	var minAge, maxAge int
	if c.QueryParam("minAge") != "" {
		binder.Int("minAge", &minAge)
		query.MinAge = &minAge
	}
	if c.QueryParam("maxAge") != "" {
		binder.Int("maxAge", &maxAge)
		query.MaxAge = &maxAge
	}

	if err := binder.BindError(); err != nil {
		field := "query"
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			field = bindErr.Field
		}

		return nil, domainerrors.NewValidationError(field, "must be an integer")
	}

	if err := c.Validate(query); err != nil {
		return nil, err
	}

	return query, nil
}
