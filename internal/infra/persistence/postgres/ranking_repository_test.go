package postgres

import (
	"context"
	"testing"
	"time"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingRepository_ReplaceAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	_, found, err := repo.FindEpoch(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)

	near, far, hidden := uuid.New(), uuid.New(), uuid.New()
	entries := []*entity.RankingEntry{
		{UserID: userID, OtherUserID: near, Meet: 5, Spots: 1, Score: 22, Age: 25, Gender: "female", BlurType: entity.BlurTypeNeighbor, UpdatedAt: 42},
		{UserID: userID, OtherUserID: far, Meet: 1, Spots: 3, Score: 24, Age: 40, Gender: "male", BlurType: entity.BlurTypeTravel, UpdatedAt: 42},
		{UserID: userID, OtherUserID: hidden, Meet: 9, Spots: 9, Score: 90, Hide: true, BlurType: entity.BlurTypeNeighbor, UpdatedAt: 42},
	}
	require.NoError(t, repo.Replace(ctx, userID, entries))

	epochID, found, err := repo.FindEpoch(ctx, userID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), epochID)

	byMeet, err := repo.List(ctx, userID, entity.RankingFilter{Sort: entity.RankingSortMeet, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, byMeet, 2)
	assert.Equal(t, near, byMeet[0].OtherUserID)

	byScore, err := repo.List(ctx, userID, entity.RankingFilter{Sort: entity.RankingSortScore, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, byScore, 2)
	assert.Equal(t, far, byScore[0].OtherUserID)
	assert.Equal(t, entity.BlurTypeTravel, byScore[0].BlurType)

	minAge := 30
	older, err := repo.List(ctx, userID, entity.RankingFilter{Sort: entity.RankingSortScore, Page: 1, PageSize: 10, MinAge: &minAge})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, far, older[0].OtherUserID)

	secondPage, err := repo.List(ctx, userID, entity.RankingFilter{Sort: entity.RankingSortScore, Page: 2, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, secondPage, 1)
	assert.Equal(t, near, secondPage[0].OtherUserID)
}

func TestRankingRepository_ReplaceDropsStaleRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	userID, other := uuid.New(), uuid.New()
	require.NoError(t, repo.Replace(ctx, userID, []*entity.RankingEntry{
		{UserID: userID, OtherUserID: other, Meet: 1, BlurType: entity.BlurTypeNeighbor, LastMatchedAt: time.Now().UTC(), UpdatedAt: 1},
	}))
	require.NoError(t, repo.Replace(ctx, userID, nil))

	rows, err := repo.List(ctx, userID, entity.RankingFilter{Sort: entity.RankingSortMeet, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRankingRepository_DeletePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, repo.Replace(ctx, a, []*entity.RankingEntry{
		{UserID: a, OtherUserID: b, Meet: 1, BlurType: entity.BlurTypeNeighbor, UpdatedAt: 1},
		{UserID: a, OtherUserID: c, Meet: 1, BlurType: entity.BlurTypeNeighbor, UpdatedAt: 1},
	}))
	require.NoError(t, repo.Replace(ctx, b, []*entity.RankingEntry{
		{UserID: b, OtherUserID: a, Meet: 1, BlurType: entity.BlurTypeNeighbor, UpdatedAt: 1},
	}))

	require.NoError(t, repo.DeletePair(ctx, a, b))

	rowsA, err := repo.List(ctx, a, entity.RankingFilter{Sort: entity.RankingSortMeet, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, rowsA, 1)
	assert.Equal(t, c, rowsA[0].OtherUserID)

	rowsB, err := repo.List(ctx, b, entity.RankingFilter{Sort: entity.RankingSortMeet, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, rowsB)
}
