package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	DiagnosticsService *service.DiagnosticsService
}

func NewHealthController(diagnosticsService *service.DiagnosticsService) *HealthController {
	return &HealthController{DiagnosticsService: diagnosticsService}
}

// @Summary 服务信息
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	util.Success(ctx, gin.H{"name": "Creator Insight Portal API", "status": "ok"})
}

// @Summary 数据库诊断
// @Tags 系统
// @Produce json
// @Success 200 {object} service.DatabaseReport
// @Router /test [get]
func (c *HealthController) TestDatabase(ctx *gin.Context) {
	util.Success(ctx, c.DiagnosticsService.Report(ctx.Request.Context()))
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.DiagnosticsService.Healthy(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
