package service

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		points int
		want   model.Level
	}{
		{0, model.Bronze},
		{1860, model.Bronze},
		{1999, model.Bronze},
		{2000, model.Silver},
		{4999, model.Silver},
		{5000, model.Gold},
		{9999, model.Gold},
		{10000, model.Platinum},
		{25000, model.Platinum},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.points), "points=%d", tc.points)
	}
}

func TestProgressFor(t *testing.T) {
	cases := []struct {
		points  int
		next    model.Level
		percent float64
	}{
		{-5, model.Bronze, 100},
		{0, model.Silver, 0},
		{1860, model.Silver, 93},
		{2000, model.Gold, 40},
		{7500, model.Platinum, 75},
		{10000, model.Platinum, 100},
		{42000, model.Platinum, 100},
	}
	for _, tc := range cases {
		next, percent := ProgressFor(tc.points)
		assert.Equal(t, tc.next, next, "points=%d", tc.points)
		assert.InDelta(t, tc.percent, percent, 0.001, "points=%d", tc.points)
	}
}

func TestAchievementServiceDemoPoints(t *testing.T) {
	svc := NewAchievementService(DemoPointsStore{Value: 1860}, 1860)
	ctx := context.Background()

	level := svc.GetLevel(ctx, "")
	assert.False(t, level.IsFallback())
	assert.Equal(t, model.Bronze, level.Data.Level)

	progress := svc.GetProgress(ctx, "anyone")
	assert.Equal(t, ProgressResponse{Points: 1860, NextLevel: model.Silver, ProgressPercent: 93}, progress.Data)
}

func TestAchievementServiceCreatorPoints(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	repo := repository.NewCreatorRepository(db)

	creator := &model.Creator{Name: "Ada", Email: "ada@example.com", TotalPoints: 5200}
	require.NoError(t, repo.Create(ctx, creator))

	svc := NewAchievementService(CreatorPointsStore{Repo: repo}, 1860)

	level := svc.GetLevel(ctx, creator.ID)
	assert.False(t, level.IsFallback())
	assert.Equal(t, model.Gold, level.Data.Level)

	progress := svc.GetProgress(ctx, creator.ID)
	assert.Equal(t, model.Platinum, progress.Data.NextLevel)
	assert.InDelta(t, 52.0, progress.Data.ProgressPercent, 0.001)

	missing := svc.GetProgress(ctx, "nobody")
	assert.True(t, missing.IsFallback())
	assert.ErrorIs(t, missing.Reason, util.ErrNotFound)
	assert.Equal(t, 1860, missing.Data.Points)

	anonymous := svc.GetLevel(ctx, "")
	assert.True(t, anonymous.IsFallback())
	assert.Equal(t, model.Bronze, anonymous.Data.Level)
}

func TestAchievementServiceWithoutDatabase(t *testing.T) {
	svc := NewAchievementService(CreatorPointsStore{Repo: repository.NewCreatorRepository(nil)}, 1860)

	r := svc.GetLevel(context.Background(), "c-1")
	assert.True(t, r.IsFallback())
	assert.ErrorIs(t, r.Reason, util.ErrStoreUnavailable)
	assert.Equal(t, model.Bronze, r.Data.Level)
}

func TestAchievementUpdateEchoes(t *testing.T) {
	svc := NewAchievementService(DemoPointsStore{Value: 1860}, 1860)
	delta := 50

	resp := svc.Update(UpdateAchievementRequest{CreatorID: "c-1", PointsDelta: &delta})
	assert.Equal(t, UpdateAchievementResponse{Status: "ok", CreatorID: "c-1", PointsAdded: 50}, resp)

	// 积分未被写入
	assert.Equal(t, 1860, svc.GetProgress(context.Background(), "c-1").Data.Points)
}
