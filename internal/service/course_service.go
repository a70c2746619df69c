package service

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/util"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

const (
	demoCompletionRate = 82.4
	demoAvgWatchTime   = 37.5
	demoSubmissionRate = 68.0
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	AnalyticRepo *repository.AnalyticRepository
	ReviewRepo   *repository.ReviewRepository
	Now          func() time.Time
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	analyticRepo *repository.AnalyticRepository,
	reviewRepo *repository.ReviewRepository,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		AnalyticRepo: analyticRepo,
		ReviewRepo:   reviewRepo,
		Now:          time.Now,
	}
}

type CourseItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type SeriesItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type CompletionRateResponse struct {
	CompletionRate float64 `json:"completionRate"`
}

type WatchTimeResponse struct {
	AvgWatchTime float64 `json:"avgWatchTime"`
}

type DropOffPoint struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

type DropOffResponse struct {
	Points []DropOffPoint `json:"points"`
}

type AssignmentStatsResponse struct {
	SubmissionRate float64 `json:"submissionRate"`
}

type ReviewItem struct {
	LearnerID  string  `json:"learnerId"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

type ReviewsResponse struct {
	Rating  float64      `json:"rating"`
	Count   int          `json:"count"`
	Reviews []ReviewItem `json:"reviews"`
}

func demoCourses() []CourseItem {
	return []CourseItem{
		{ID: "c1", Title: "Mastering Python", Category: "Programming"},
		{ID: "c2", Title: "Data Visualization", Category: "Analytics"},
		{ID: "c3", Title: "Teaching with AI", Category: "Education"},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *CourseService) ListCourses(ctx context.Context) Result[[]CourseItem] {
	courses, err := s.CourseRepo.List(ctx)
	if err != nil {
		return fallback(demoCourses(), err)
	}

	items := make([]CourseItem, len(courses))
	for i, c := range courses {
		items[i] = CourseItem{
			ID:       c.ID,
			Title:    orDefault(c.Title, "Untitled"),
			Category: orDefault(c.Category, "General"),
		}
	}
	return live(items)
}

// GetCourse 找到时返回完整课程记录，否则返回占位课程
func (s *CourseService) GetCourse(ctx context.Context, id string) Result[interface{}] {
	course, err := s.CourseRepo.FindByID(ctx, id)
	if err != nil {
		var placeholder interface{} = CourseItem{ID: id, Title: "Course", Category: "General"}
		return fallback(placeholder, err)
	}
	var doc interface{} = course
	return live(doc)
}

// SeriesLength 每种粒度的合成序列长度
func SeriesLength(period model.Timeframe) int {
	switch period {
	case model.Weekly:
		return 12
	case model.Monthly:
		return 6
	}
	return 14
}

func (s *CourseService) GetEnrollments(ctx context.Context, courseID string, period model.Timeframe) (Result[[]SeriesItem], error) {
	if period == "" {
		period = model.Daily
	}
	if !period.Valid() {
		return Result[[]SeriesItem]{}, util.ErrInvalidPeriod
	}

	rows, err := s.AnalyticRepo.Series(ctx, courseID, period)
	if err != nil {
		n := SeriesLength(period)
		series := make([]SeriesItem, n)
		for i := 0; i < n; i++ {
			series[i] = SeriesItem{Label: strconv.Itoa(i + 1), Value: 50 + (i*13)%60}
		}
		return fallback(series, err), nil
	}

	series := make([]SeriesItem, len(rows))
	for i, row := range rows {
		series[i] = SeriesItem{Label: strconv.Itoa(i + 1), Value: row.Enrollments}
	}
	return live(series), nil
}

func (s *CourseService) GetCompletion(ctx context.Context, courseID string) Result[CompletionRateResponse] {
	a, err := s.AnalyticRepo.Latest(ctx, courseID)
	if err != nil {
		return fallback(CompletionRateResponse{CompletionRate: demoCompletionRate}, err)
	}
	return live(CompletionRateResponse{CompletionRate: a.CompletionRate})
}

func (s *CourseService) GetWatchTime(ctx context.Context, courseID string) Result[WatchTimeResponse] {
	a, err := s.AnalyticRepo.Latest(ctx, courseID)
	if err != nil {
		return fallback(WatchTimeResponse{AvgWatchTime: demoAvgWatchTime}, err)
	}
	return live(WatchTimeResponse{AvgWatchTime: a.AvgWatchTime})
}

func (s *CourseService) GetAssignments(ctx context.Context, courseID string) Result[AssignmentStatsResponse] {
	a, err := s.AnalyticRepo.Latest(ctx, courseID)
	if err != nil {
		return fallback(AssignmentStatsResponse{SubmissionRate: demoSubmissionRate}, err)
	}
	return live(AssignmentStatsResponse{SubmissionRate: a.AssignmentSubmissionRate})
}

// DemoDropOff 时间轴百分比 t 上剩余观看比例，60% 之后额外下降 5
func DemoDropOff() []DropOffPoint {
	points := make([]DropOffPoint, 0, 21)
	for t := 0; t <= 100; t += 5 {
		penalty := 0.0
		if t > 60 {
			penalty = 5
		}
		v := math.Max(0, 100.0-(float64(t)*1.2+penalty))
		points = append(points, DropOffPoint{T: float64(t), V: v})
	}
	return points
}

func parseDropOff(raw []byte) ([]DropOffPoint, error) {
	if len(raw) == 0 {
		return nil, util.ErrNotFound
	}
	var m map[string]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode drop-off points: %w", err)
	}
	points := make([]DropOffPoint, 0, len(m))
	for k, v := range m {
		t, ok := util.ParseFloatKey(k)
		if !ok {
			continue
		}
		points = append(points, DropOffPoint{T: t, V: v})
	}
	if len(points) == 0 {
		return nil, util.ErrNotFound
	}
	sort.Slice(points, func(i, j int) bool { return points[i].T < points[j].T })
	return points, nil
}

func (s *CourseService) GetDropOff(ctx context.Context, courseID string) Result[DropOffResponse] {
	a, err := s.AnalyticRepo.Latest(ctx, courseID)
	if err != nil {
		return fallback(DropOffResponse{Points: DemoDropOff()}, err)
	}
	points, err := parseDropOff(a.DropOffPoints)
	if err != nil {
		return fallback(DropOffResponse{Points: DemoDropOff()}, err)
	}
	return live(DropOffResponse{Points: points})
}

func (s *CourseService) demoReviews() []ReviewItem {
	today := s.Now().UTC().Format(util.DateFormat)
	return []ReviewItem{
		{LearnerID: "u1", Rating: 4.5, ReviewText: "Great pacing and examples!", CreatedAt: today},
		{LearnerID: "u2", Rating: 4.8, ReviewText: "Loved the hands-on approach.", CreatedAt: today},
		{LearnerID: "u3", Rating: 4.2, ReviewText: "Clear explanations.", CreatedAt: today},
	}
}

func summarizeReviews(reviews []ReviewItem) ReviewsResponse {
	sum := 0.0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = util.Round2(sum / float64(len(reviews)))
	}
	return ReviewsResponse{Rating: avg, Count: len(reviews), Reviews: reviews}
}

func (s *CourseService) GetReviews(ctx context.Context, courseID string) Result[ReviewsResponse] {
	rows, err := s.ReviewRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		return fallback(summarizeReviews(s.demoReviews()), err)
	}

	items := make([]ReviewItem, len(rows))
	for i, r := range rows {
		items[i] = ReviewItem{
			LearnerID:  r.LearnerID,
			Rating:     r.Rating,
			ReviewText: r.ReviewText,
			CreatedAt:  r.CreatedAt.UTC().Format(util.DateFormat),
		}
	}
	return live(summarizeReviews(items))
}
