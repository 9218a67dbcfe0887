package impl

import (
	"context"
	"fmt"
	"log/slog"

	"crossing/config"
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

type rankingService struct {
	rankings     repository.RankingRepository
	matchRecords repository.MatchRecordRepository
	pairs        repository.PairAggregateRepository
	addresses    repository.AddressRepository
	profiles     service.ProfileService
	blocks       service.BlockService
	hides        service.HideService
	entitlements service.EntitlementService
	epochs       service.EpochState
	clock        service.Clock
	cfg          *config.CrossingConfig
	blur         *config.BlurConfig
	logger       *slog.Logger
}

// RankingServiceParams holds dependencies for RankingService, injected by Fx.
type RankingServiceParams struct {
	fx.In

	Rankings     repository.RankingRepository
	MatchRecords repository.MatchRecordRepository
	Pairs        repository.PairAggregateRepository
	Addresses    repository.AddressRepository
	Profiles     service.ProfileService
	Blocks       service.BlockService
	Hides        service.HideService
	Entitlements service.EntitlementService
	Epochs       service.EpochState
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRankingService is the constructor for rankingService.
func NewRankingService(params RankingServiceParams) usecase.RankingUsecase {
	return &rankingService{
		rankings:     params.Rankings,
		matchRecords: params.MatchRecords,
		pairs:        params.Pairs,
		addresses:    params.Addresses,
		profiles:     params.Profiles,
		blocks:       params.Blocks,
		hides:        params.Hides,
		entitlements: params.Entitlements,
		epochs:       params.Epochs,
		clock:        params.Clock,
		cfg:          crossingConfig(params.Config),
		blur:         blurConfig(params.Config),
		logger:       params.Logger,
	}
}

func (srv *rankingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of the user's ranking, recomputing the cached rows
// first when they were not computed in the current epoch.
func (srv *rankingService) List(ctx context.Context, userID uuid.UUID, query *usecase.RankingQuery) (*usecase.RankingPage, error) {
	filter, err := srv.buildFilter(query)
	if err != nil {
		return nil, err
	}

	if _, err := srv.profiles.FindProfile(ctx, userID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	epoch := srv.epochs.Current()

	storedEpoch, found, err := srv.rankings.FindEpoch(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ranking epoch")
	}

	if !found || storedEpoch != epoch.ID {
		if err := srv.recompute(ctx, userID, epoch); err != nil {
			return nil, err
		}
	}

	entries, err := srv.rankings.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ranking")
	}

	items, err := srv.present(ctx, userID, entries)
	if err != nil {
		return nil, err
	}

	return &usecase.RankingPage{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Sort:     string(filter.Sort),
		EpochID:  epoch.ID,
	}, nil
}

func (srv *rankingService) buildFilter(query *usecase.RankingQuery) (entity.RankingFilter, error) {
	filter := entity.RankingFilter{
		Sort:     entity.RankingSortScore,
		Page:     1,
		PageSize: srv.cfg.PageSize,
	}
	if query == nil {
		return filter, nil
	}

	if query.Sort != "" {
		sort := entity.RankingSort(query.Sort)
		if !sort.IsValid() {
			return filter, domainerrors.NewValidationError("sort", "must be one of meet, meetCount, spots, score")
		}
		filter.Sort = sort
	}

	if query.Page < 0 || query.Page > usecase.MaxRankingPage {
		return filter, domainerrors.NewValidationError("page", fmt.Sprintf("must be between 1 and %d", usecase.MaxRankingPage))
	}
	if query.Page > 0 {
		filter.Page = query.Page
	}

	if query.MinAge != nil && query.MaxAge != nil && *query.MinAge > *query.MaxAge {
		return filter, domainerrors.NewValidationError("minAge", "must not exceed maxAge")
	}
	filter.MinAge = query.MinAge
	filter.MaxAge = query.MaxAge
	filter.Gender = query.Gender

	return filter, nil
}

// recompute rebuilds every ranking row of the user from the recent match
// history and stamps them with the epoch.
func (srv *rankingService) recompute(ctx context.Context, userID uuid.UUID, epoch entity.Epoch) error {
	now := srv.clock.Now()

	records, err := srv.matchRecords.FindByUserBetween(ctx, userID, now.Add(-srv.cfg.RankingWindow), now)
	if err != nil {
		return errors.Wrap(err, "failed to load match history")
	}

	series, err := srv.visibleSeries(ctx, userID, groupByCounterpart(records))
	if err != nil {
		return err
	}

	others := make([]uuid.UUID, 0, len(series))
	keys := make([]entity.PairKey, 0, len(series))
	for _, s := range series {
		others = append(others, s.otherUserID)
		keys = append(keys, entity.NewPairKey(userID, s.otherUserID))
	}

	profiles, err := srv.profiles.FindProfiles(ctx, others)
	if err != nil {
		return errors.Wrap(err, "failed to find counterpart profiles")
	}

	hidden, err := srv.hides.HiddenAmong(ctx, userID, others)
	if err != nil {
		return errors.Wrap(err, "failed to check hide relations")
	}

	pairs, err := srv.pairs.FindByKeys(ctx, keys)
	if err != nil {
		return errors.Wrap(err, "failed to find pair aggregates")
	}

	homes, err := srv.addresses.FindHomesByOwners(ctx, append(others, userID))
	if err != nil {
		return errors.Wrap(err, "failed to find homes")
	}

	entries := make([]*entity.RankingEntry, 0, len(series))
	for _, s := range series {
		profile, ok := profiles[s.otherUserID]
		if !ok {
			continue
		}

		meet, spots := computeMeetSpots(s.times, srv.cfg.SpotGap)

		var meetCount int64
		if pair, ok := pairs[entity.NewPairKey(userID, s.otherUserID)]; ok {
			meetCount = pair.MeetMatchingCount
		}

		entries = append(entries, &entity.RankingEntry{
			UserID:          userID,
			OtherUserID:     s.otherUserID,
			Meet:            meet,
			Spots:           spots,
			MeetCount:       meetCount,
			Score:           computeScore(meet, spots),
			Age:             profile.Age,
			Gender:          profile.Gender,
			Hide:            hidden[s.otherUserID],
			BlurType:        classifyBlur(homes[userID], homes[s.otherUserID], s.latest.SubjectCoordinates, s.latest.Coordinates, srv.blur.HomeRadiusKm),
			LastCoordinates: s.latest.Coordinates,
			LastMatchedAt:   s.latest.MatchedAt,
			UpdatedAt:       epoch.ID,
		})
	}

	if err := srv.rankings.Replace(ctx, userID, entries); err != nil {
		return errors.Wrap(err, "failed to store ranking")
	}

	srv.log(ctx).Debug("Ranking recomputed",
		slog.Any("user_id", userID),
		slog.Int64("epoch_id", epoch.ID),
		slog.Int("entries", len(entries)),
	)

	return nil
}

// visibleSeries drops counterparts in a block relation with the user.
func (srv *rankingService) visibleSeries(ctx context.Context, userID uuid.UUID, series []*counterpartSeries) ([]*counterpartSeries, error) {
	if len(series) == 0 {
		return series, nil
	}

	relations, err := srv.blocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list block relations")
	}
	blocks := entity.NewBlockSet(relations)

	visible := series[:0]
	for _, s := range series {
		if !blocks.Blocked(userID, s.otherUserID) {
			visible = append(visible, s)
		}
	}

	return visible, nil
}

// present applies the blur to a page of rows, loading the subject's
// exemptions once for the whole page.
func (srv *rankingService) present(ctx context.Context, userID uuid.UUID, entries []*entity.RankingEntry) ([]*usecase.CrossingView, error) {
	items := make([]*usecase.CrossingView, 0, len(entries))

	var blurrable []uuid.UUID
	for _, e := range entries {
		if e.BlurType.Blurrable() {
			blurrable = append(blurrable, e.OtherUserID)
		}
	}

	var exemptions blurExemptions
	if len(blurrable) > 0 {
		var err error
		if exemptions, err = srv.loadExemptions(ctx, userID, blurrable); err != nil {
			return nil, err
		}
	}

	for _, e := range entries {
		blurred := e.BlurType.Blurrable() && !blurExempt(userID, e.OtherUserID, e.BlurType, exemptions)

		item := &usecase.CrossingView{
			OtherUserID:   e.OtherUserID,
			Meet:          e.Meet,
			Spots:         e.Spots,
			MeetCount:     e.MeetCount,
			Score:         e.Score,
			Age:           e.Age,
			Gender:        e.Gender,
			BlurType:      e.BlurType,
			Blurred:       blurred,
			LastMatchedAt: e.LastMatchedAt,
		}
		if !blurred {
			coords := e.LastCoordinates
			item.Coordinates = &coords
		}

		items = append(items, item)
	}

	return items, nil
}

func (srv *rankingService) loadExemptions(ctx context.Context, userID uuid.UUID, others []uuid.UUID) (blurExemptions, error) {
	now := srv.clock.Now()

	passes, err := srv.entitlements.ActivePassCategories(ctx, userID, now)
	if err != nil {
		return blurExemptions{}, errors.Wrap(err, "failed to load passes")
	}

	purchases, err := srv.entitlements.PurchasedSince(ctx, userID, others, now.Add(-srv.blur.PurchaseWindow))
	if err != nil {
		return blurExemptions{}, errors.Wrap(err, "failed to load purchases")
	}

	keys := make([]entity.PairKey, 0, len(others))
	for _, other := range others {
		keys = append(keys, entity.NewPairKey(userID, other))
	}

	pairs, err := srv.pairs.FindByKeys(ctx, keys)
	if err != nil {
		return blurExemptions{}, errors.Wrap(err, "failed to load pair aggregates")
	}

	return blurExemptions{passes: passes, purchases: purchases, pairs: pairs}, nil
}
