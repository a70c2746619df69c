package service

import (
	"context"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/util"
	"time"
)

const (
	demoTotalCourses     = 8
	demoTotalEnrollments = 1240
	minActiveLearners    = 500
	activityDays         = 14
)

type DashboardService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Now            func() time.Time
}

func NewDashboardService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository) *DashboardService {
	return &DashboardService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Now:            time.Now,
	}
}

type SummaryResponse struct {
	TotalCourses     int `json:"totalCourses"`
	TotalEnrollments int `json:"totalEnrollments"`
	ActiveLearners   int `json:"activeLearners"`
}

type ActivityItem struct {
	Date        string `json:"date"`
	Enrollments int    `json:"enrollments"`
}

// countOr 计数失败或为 0 时返回 def
func countOr(count int64, err error, def int) (int, error) {
	if err != nil {
		return def, err
	}
	if count == 0 {
		return def, util.ErrNotFound
	}
	return int(count), nil
}

func (s *DashboardService) GetSummary(ctx context.Context) Result[SummaryResponse] {
	courseCount, err := s.CourseRepo.Count(ctx)
	courses, courseErr := countOr(courseCount, err, demoTotalCourses)

	enrollmentCount, err := s.EnrollmentRepo.Count(ctx)
	enrollments, enrollErr := countOr(enrollmentCount, err, demoTotalEnrollments)

	active := int(float64(enrollments) * 0.6)
	if active < minActiveLearners {
		active = minActiveLearners
	}

	summary := SummaryResponse{
		TotalCourses:     courses,
		TotalEnrollments: enrollments,
		ActiveLearners:   active,
	}
	if courseErr != nil {
		return fallback(summary, courseErr)
	}
	if enrollErr != nil {
		return fallback(summary, enrollErr)
	}
	return live(summary)
}

// GetActivity 生成截至今天的 14 天合成序列
func (s *DashboardService) GetActivity() []ActivityItem {
	today := s.Now().UTC()
	items := make([]ActivityItem, 0, activityDays)
	for i := 0; i < activityDays; i++ {
		d := today.AddDate(0, 0, -(activityDays - 1 - i))
		items = append(items, ActivityItem{
			Date:        d.Format(util.DateFormat),
			Enrollments: 80 + (i*7)%40,
		})
	}
	return items
}
