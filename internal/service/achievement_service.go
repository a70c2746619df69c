package service

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/util"
	"math"
)

type threshold struct {
	Level  model.Level
	Points int
}

// 升序排列
var levelThresholds = []threshold{
	{model.Bronze, 0},
	{model.Silver, 2000},
	{model.Gold, 5000},
	{model.Platinum, 10000},
}

// LevelFor 返回积分达到的最高等级
func LevelFor(points int) model.Level {
	level := levelThresholds[0].Level
	for _, t := range levelThresholds {
		if points >= t.Points {
			level = t.Level
		}
	}
	return level
}

// ProgressFor 返回下一等级以及当前积分占下一门槛的百分比，已是最高等级或门槛为 0 时为 100
func ProgressFor(points int) (model.Level, float64) {
	for _, t := range levelThresholds {
		if points < t.Points {
			// 负积分的下一门槛是 0，不能作除数
			if t.Points <= 0 {
				return t.Level, 100
			}
			return t.Level, math.Min(100, util.Round2(float64(points)/float64(t.Points)*100))
		}
	}
	return levelThresholds[len(levelThresholds)-1].Level, 100
}

// PointsStore 提供创作者当前积分
type PointsStore interface {
	Points(ctx context.Context, creatorID string) (int, error)
}

// DemoPointsStore 对所有创作者返回同一个固定积分
type DemoPointsStore struct {
	Value int
}

func (s DemoPointsStore) Points(ctx context.Context, creatorID string) (int, error) {
	return s.Value, nil
}

// CreatorPointsStore 从 creators.total_points 读取积分
type CreatorPointsStore struct {
	Repo *repository.CreatorRepository
}

func (s CreatorPointsStore) Points(ctx context.Context, creatorID string) (int, error) {
	if creatorID == "" {
		return 0, util.ErrNotFound
	}
	creator, err := s.Repo.FindByID(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	return creator.TotalPoints, nil
}

type AchievementService struct {
	Store      PointsStore
	DemoPoints int
}

func NewAchievementService(store PointsStore, demoPoints int) *AchievementService {
	return &AchievementService{Store: store, DemoPoints: demoPoints}
}

type LevelResponse struct {
	Level model.Level `json:"level"`
}

type ProgressResponse struct {
	Points          int         `json:"points"`
	NextLevel       model.Level `json:"nextLevel"`
	ProgressPercent float64     `json:"progressPercent"`
}

type UpdateAchievementRequest struct {
	CreatorID   string `json:"creatorId" binding:"required"`
	PointsDelta *int   `json:"pointsDelta" binding:"required"`
}

type UpdateAchievementResponse struct {
	Status      string `json:"status"`
	CreatorID   string `json:"creatorId"`
	PointsAdded int    `json:"pointsAdded"`
}

func (s *AchievementService) points(ctx context.Context, creatorID string) Result[int] {
	p, err := s.Store.Points(ctx, creatorID)
	if err != nil {
		return fallback(s.DemoPoints, err)
	}
	return live(p)
}

func (s *AchievementService) GetLevel(ctx context.Context, creatorID string) Result[LevelResponse] {
	p := s.points(ctx, creatorID)
	return Result[LevelResponse]{
		Data:   LevelResponse{Level: LevelFor(p.Data)},
		Source: p.Source,
		Reason: p.Reason,
	}
}

func (s *AchievementService) GetProgress(ctx context.Context, creatorID string) Result[ProgressResponse] {
	p := s.points(ctx, creatorID)
	next, percent := ProgressFor(p.Data)
	return Result[ProgressResponse]{
		Data: ProgressResponse{
			Points:          p.Data,
			NextLevel:       next,
			ProgressPercent: percent,
		},
		Source: p.Source,
		Reason: p.Reason,
	}
}

// Update 只回显请求，不写入积分
func (s *AchievementService) Update(req UpdateAchievementRequest) UpdateAchievementResponse {
	delta := 0
	if req.PointsDelta != nil {
		delta = *req.PointsDelta
	}
	return UpdateAchievementResponse{
		Status:      "ok",
		CreatorID:   req.CreatorID,
		PointsAdded: delta,
	}
}
