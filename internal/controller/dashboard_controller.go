package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 仪表盘汇总
// @Description 课程数、报名数和活跃学员数，数据库不可用时返回演示数据
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SummaryResponse
// @Router /dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	respond(ctx, c.DashboardService.GetSummary(ctx.Request.Context()))
}

// @Summary 最近 14 天报名趋势
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.ActivityItem
// @Router /dashboard/activity [get]
func (c *DashboardController) GetActivity(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetActivity())
}
