package repository

import (
	"context"
	"creator_insight_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(achievement); err != nil {
		return err
	}
	return translate(db.Create(achievement).Error)
}
