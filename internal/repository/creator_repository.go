package repository

import (
	"context"
	"creator_insight_backend/internal/model"

	"gorm.io/gorm"
)

type CreatorRepository struct {
	DB *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) *CreatorRepository {
	return &CreatorRepository{DB: db}
}

func (r *CreatorRepository) FindByID(ctx context.Context, id string) (*model.Creator, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var creator model.Creator
	if err := db.Where("id = ?", id).First(&creator).Error; err != nil {
		return nil, translate(err)
	}
	return &creator, nil
}

func (r *CreatorRepository) Create(ctx context.Context, creator *model.Creator) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(creator); err != nil {
		return err
	}
	return translate(db.Create(creator).Error)
}

type InsightRepository struct {
	DB *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{DB: db}
}

func (r *InsightRepository) LatestForCreator(ctx context.Context, creatorID string) (*model.AIInsight, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var insight model.AIInsight
	err = db.Where("creator_id = ?", creatorID).Order("created_at desc").First(&insight).Error
	if err != nil {
		return nil, translate(err)
	}
	return &insight, nil
}

func (r *InsightRepository) Create(ctx context.Context, insight *model.AIInsight) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(insight); err != nil {
		return err
	}
	return translate(db.Create(insight).Error)
}
