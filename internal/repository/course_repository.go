package repository

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/util"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// List 返回全部课程，结果为空时返回 ErrNotFound
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := db.Order("created_at").Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	if len(courses) == 0 {
		return nil, util.ErrNotFound
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	var course model.Course
	if err := db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(course); err != nil {
		return err
	}
	return translate(db.Create(course).Error)
}

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.Model(&model.Enrollment{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	if err := model.Validate(enrollment); err != nil {
		return err
	}
	return translate(db.Create(enrollment).Error)
}
