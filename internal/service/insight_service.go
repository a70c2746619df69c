package service

import (
	"context"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/util"
	"strings"
)

const (
	defaultTopic   = "Building Interactive Dashboards with Real-time Data"
	reviewsSummary = "Students appreciate clear examples and structured progression; consider more advanced challenges for fast learners."
)

var improvementTips = []string{
	"Shorten long lectures into 6-8 minute segments",
	"Add a recap quiz after each section",
	"Include a real-world mini project in module 3",
}

// InsightService 返回模板化的建议文本，不调用任何模型
type InsightService struct {
	InsightRepo *repository.InsightRepository
}

func NewInsightService(insightRepo *repository.InsightRepository) *InsightService {
	return &InsightService{InsightRepo: insightRepo}
}

type NextTopicRequest struct {
	CreatorID string   `json:"creatorId"`
	Interests []string `json:"interests"`
}

type TipsRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

type SummarizeReviewsRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

type AITextResponse struct {
	Text string `json:"text"`
}

func topicText(topic string) AITextResponse {
	return AITextResponse{Text: "Recommended next course topic: " + topic + "."}
}

// NextTopic 优先使用创作者最近一次洞察里的推荐主题
func (s *InsightService) NextTopic(ctx context.Context, req NextTopicRequest) Result[AITextResponse] {
	if req.CreatorID == "" {
		return fallback(topicText(defaultTopic), util.ErrNotFound)
	}
	insight, err := s.InsightRepo.LatestForCreator(ctx, req.CreatorID)
	if err != nil {
		return fallback(topicText(defaultTopic), err)
	}
	if insight.RecommendedTopic == "" {
		return fallback(topicText(defaultTopic), util.ErrNotFound)
	}
	return live(topicText(insight.RecommendedTopic))
}

func (s *InsightService) ImprovementTips(req TipsRequest) AITextResponse {
	lines := make([]string, len(improvementTips))
	for i, t := range improvementTips {
		lines[i] = "• " + t
	}
	return AITextResponse{Text: strings.Join(lines, "\n")}
}

func (s *InsightService) SummarizeReviews(req SummarizeReviewsRequest) AITextResponse {
	return AITextResponse{Text: reviewsSummary}
}
