package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary 创作者等级
// @Tags 成就系统
// @Produce json
// @Param creatorId query string false "创作者ID"
// @Success 200 {object} service.LevelResponse
// @Router /achievements/level [get]
func (c *AchievementController) GetLevel(ctx *gin.Context) {
	respond(ctx, c.AchievementService.GetLevel(ctx.Request.Context(), ctx.Query("creatorId")))
}

// @Summary 升级进度
// @Tags 成就系统
// @Produce json
// @Param creatorId query string false "创作者ID"
// @Success 200 {object} service.ProgressResponse
// @Router /achievements/progress [get]
func (c *AchievementController) GetProgress(ctx *gin.Context) {
	respond(ctx, c.AchievementService.GetProgress(ctx.Request.Context(), ctx.Query("creatorId")))
}

// @Summary 更新积分
// @Description 回显积分变化，不持久化
// @Tags 成就系统
// @Accept json
// @Produce json
// @Param body body service.UpdateAchievementRequest true "积分变化"
// @Success 200 {object} service.UpdateAchievementResponse
// @Failure 400 {object} util.Response
// @Router /achievements/update [post]
func (c *AchievementController) Update(ctx *gin.Context) {
	var req service.UpdateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.AchievementService.Update(req))
}
