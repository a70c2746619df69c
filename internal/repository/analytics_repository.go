package repository

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/util"

	"gorm.io/gorm"
)

type AnalyticRepository struct {
	DB *gorm.DB
}

func NewAnalyticRepository(db *gorm.DB) *AnalyticRepository {
	return &AnalyticRepository{DB: db}
}

// Latest 返回课程最近一条统计快照
func (r *AnalyticRepository) Latest(ctx context.Context, courseID string) (*model.Analytic, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var a model.Analytic
	if err := db.Where("course_id = ?", courseID).Order("created_at desc").First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// Series 按时间先后返回某一粒度的全部快照
func (r *AnalyticRepository) Series(ctx context.Context, courseID string, timeframe model.Timeframe) ([]model.Analytic, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var items []model.Analytic
	err = db.Where("course_id = ? AND timeframe = ?", courseID, timeframe).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	if len(items) == 0 {
		return nil, util.ErrNotFound
	}
	return items, nil
}

func (r *AnalyticRepository) Create(ctx context.Context, a *model.Analytic) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(a); err != nil {
		return err
	}
	return translate(db.Create(a).Error)
}

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByCourseID(ctx context.Context, courseID string) ([]model.Review, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := db.Where("course_id = ?", courseID).Order("created_at").Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	if len(reviews) == 0 {
		return nil, util.ErrNotFound
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(review); err != nil {
		return err
	}
	return translate(db.Create(review).Error)
}
