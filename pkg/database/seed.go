package database

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/repository"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const demoCreatorEmail = "creator@example.com"

// Seed 在 creators 表为空时写入一套演示数据，写入走仓储层，同样做形状校验
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Creator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creator := &model.Creator{
			Name:        "Demo Creator",
			Email:       demoCreatorEmail,
			Bio:         "Passionate educator creating impactful learning experiences.",
			TotalPoints: 1860,
		}
		if err := seedStep(creator, repository.NewCreatorRepository(tx).Create(ctx, creator)); err != nil {
			return err
		}

		courseRepo := repository.NewCourseRepository(tx)
		courses := []*model.Course{
			{UUIDBase: model.UUIDBase{ID: "c1"}, CreatorID: creator.ID, Title: "Mastering Python", Category: "Programming"},
			{UUIDBase: model.UUIDBase{ID: "c2"}, CreatorID: creator.ID, Title: "Data Visualization", Category: "Analytics"},
			{UUIDBase: model.UUIDBase{ID: "c3"}, CreatorID: creator.ID, Title: "Teaching with AI", Category: "Education"},
		}
		for _, c := range courses {
			if err := seedStep(c, courseRepo.Create(ctx, c)); err != nil {
				return err
			}
		}

		enrollmentRepo := repository.NewEnrollmentRepository(tx)
		now := time.Now()
		for i := 0; i < 30; i++ {
			e := &model.Enrollment{
				CourseID:   courses[i%len(courses)].ID,
				LearnerID:  fmt.Sprintf("u%d", i+1),
				EnrolledAt: now.AddDate(0, 0, -i),
			}
			if err := seedStep(e, enrollmentRepo.Create(ctx, e)); err != nil {
				return err
			}
		}

		dropOff, err := json.Marshal(map[string]float64{"0": 100, "25": 71, "50": 55, "75": 38, "100": 24})
		if err != nil {
			return err
		}
		analyticRepo := repository.NewAnalyticRepository(tx)
		for _, c := range courses {
			a := &model.Analytic{
				CourseID:                 c.ID,
				Timeframe:                model.Daily,
				Enrollments:              120,
				CompletionRate:           82.4,
				AvgWatchTime:             37.5,
				DropOffPoints:            datatypes.JSON(dropOff),
				AssignmentSubmissionRate: 68,
				Rating:                   4.5,
			}
			if err := seedStep(a, analyticRepo.Create(ctx, a)); err != nil {
				return err
			}
		}

		reviewRepo := repository.NewReviewRepository(tx)
		reviews := []*model.Review{
			{CourseID: "c1", LearnerID: "u1", Rating: 4.5, ReviewText: "Great pacing and examples!"},
			{CourseID: "c1", LearnerID: "u2", Rating: 4.8, ReviewText: "Loved the hands-on approach."},
			{CourseID: "c1", LearnerID: "u3", Rating: 4.2, ReviewText: "Clear explanations."},
		}
		for _, r := range reviews {
			if err := seedStep(r, reviewRepo.Create(ctx, r)); err != nil {
				return err
			}
		}

		achievement := &model.Achievement{CreatorID: creator.ID, Level: model.Bronze, Points: 1860, Progress: 93}
		if err := seedStep(achievement, repository.NewAchievementRepository(tx).Create(ctx, achievement)); err != nil {
			return err
		}

		insight := &model.AIInsight{
			CreatorID:        creator.ID,
			RecommendedTopic: "Building Interactive Dashboards with Real-time Data",
			Summary:          "Students appreciate clear examples and structured progression.",
			Suggestions:      datatypes.JSONSlice[string]{"Add a recap quiz after each section"},
		}
		return seedStep(insight, repository.NewInsightRepository(tx).Create(ctx, insight))
	})
}

func seedStep(entity interface{}, err error) error {
	if err != nil {
		return fmt.Errorf("seed %T: %w", entity, err)
	}
	return nil
}
