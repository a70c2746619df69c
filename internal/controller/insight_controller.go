package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary 推荐下一门课程主题
// @Tags AI 洞察
// @Accept json
// @Produce json
// @Param body body service.NextTopicRequest false "创作者和兴趣"
// @Success 200 {object} service.AITextResponse
// @Router /ai/next-topic [post]
func (c *InsightController) NextTopic(ctx *gin.Context) {
	var req service.NextTopicRequest
	// 请求体字段全部可选，允许空请求体
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	respond(ctx, c.InsightService.NextTopic(ctx.Request.Context(), req))
}

// @Summary 课程改进建议
// @Tags AI 洞察
// @Accept json
// @Produce json
// @Param body body service.TipsRequest true "课程"
// @Success 200 {object} service.AITextResponse
// @Failure 400 {object} util.Response
// @Router /ai/improvement-tips [post]
func (c *InsightController) ImprovementTips(ctx *gin.Context) {
	var req service.TipsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.InsightService.ImprovementTips(req))
}

// @Summary 评价摘要
// @Tags AI 洞察
// @Accept json
// @Produce json
// @Param body body service.SummarizeReviewsRequest true "课程"
// @Success 200 {object} service.AITextResponse
// @Failure 400 {object} util.Response
// @Router /ai/summarize-reviews [post]
func (c *InsightController) SummarizeReviews(ctx *gin.Context) {
	var req service.SummarizeReviewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.InsightService.SummarizeReviews(req))
}
