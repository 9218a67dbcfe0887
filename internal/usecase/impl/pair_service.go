package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crossing/internal/delivery/context"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/domain/service"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pairService struct {
	txManager repository.TransactionManager
	pairs     repository.PairAggregateRepository
	blocks    service.BlockService
	clock     service.Clock
	logger    *slog.Logger
}

// PairServiceParams holds dependencies for PairService, injected by Fx.
type PairServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Pairs     repository.PairAggregateRepository
	Blocks    service.BlockService
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewPairService is the constructor for pairService.
func NewPairService(params PairServiceParams) usecase.PairUsecase {
	return &pairService{
		txManager: params.TxManager,
		pairs:     params.Pairs,
		blocks:    params.Blocks,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *pairService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pairService) TagCategory(ctx context.Context, a, b uuid.UUID, category string) error {
	if err := validatePair(a, b); err != nil {
		return err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return domainerrors.NewValidationError("category", "is required")
	}

	if err := srv.pairs.AddCategory(ctx, entity.NewPairKey(a, b), category, srv.clock.Now()); err != nil {
		return errors.Wrap(err, "failed to tag pair")
	}

	return nil
}

func (srv *pairService) OnBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if err := validatePair(blockerID, blockedID); err != nil {
		return err
	}

	now := srv.clock.Now()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPairAggregateRepository().SetStatus(ctx, entity.NewPairKey(blockerID, blockedID), entity.PairStatusSuspended, now); err != nil {
			return err
		}

		return repoFactory.NewRankingRepository().DeletePair(ctx, blockerID, blockedID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to suspend pair")
	}

	srv.log(ctx).Info("Pair suspended", slog.Any("blocker_id", blockerID), slog.Any("blocked_id", blockedID))

	return nil
}

func (srv *pairService) OnUnblocked(ctx context.Context, a, b uuid.UUID) error {
	if err := validatePair(a, b); err != nil {
		return err
	}

	relations, err := srv.blocks.ListByUser(ctx, a)
	if err != nil {
		return errors.Wrap(err, "failed to list block relations")
	}

	if entity.NewBlockSet(relations).Blocked(a, b) {
		srv.log(ctx).Debug("Pair still blocked in the other direction", slog.Any("user_id", a), slog.Any("other_user_id", b))

		return nil
	}

	if err := srv.pairs.SetStatus(ctx, entity.NewPairKey(a, b), entity.PairStatusActive, srv.clock.Now()); err != nil {
		return errors.Wrap(err, "failed to restore pair")
	}

	return nil
}

func (srv *pairService) OnAccountDeleted(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPairAggregateRepository().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repoFactory.NewRankingRepository().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repoFactory.NewHiddenSnapshotRepository().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repoFactory.NewMatchRecordRepository().DeleteByUser(ctx, userID); err != nil {
			return err
		}

		return repoFactory.NewGeoPointRepository().DeleteByUser(ctx, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account data")
	}

	srv.log(ctx).Info("Account data deleted", slog.Any("user_id", userID))

	return nil
}

func validatePair(a, b uuid.UUID) error {
	if a == uuid.Nil || b == uuid.Nil {
		return domainerrors.NewValidationError("userId", "is required")
	}

	if a == b {
		return domainerrors.NewValidationError("otherUserId", "must differ from userId")
	}

	return nil
}
