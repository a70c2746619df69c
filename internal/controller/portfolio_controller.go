package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	PortfolioService *service.PortfolioService
}

func NewPortfolioController(portfolioService *service.PortfolioService) *PortfolioController {
	return &PortfolioController{PortfolioService: portfolioService}
}

// @Summary 生成作品集
// @Tags 作品集
// @Accept json
// @Produce json
// @Param body body service.PortfolioRequest true "创作者资料"
// @Success 200 {object} service.Portfolio
// @Failure 400 {object} util.Response
// @Router /portfolio/generate [post]
func (c *PortfolioController) GeneratePortfolio(ctx *gin.Context) {
	var req service.PortfolioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.PortfolioService.GeneratePortfolio(req))
}

// @Summary 生成简历
// @Tags 作品集
// @Accept json
// @Produce json
// @Param body body service.ResumeRequest true "简历资料"
// @Success 200 {object} service.Resume
// @Failure 400 {object} util.Response
// @Router /resume/generate [post]
func (c *PortfolioController) GenerateResume(ctx *gin.Context) {
	var req service.ResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.PortfolioService.GenerateResume(req))
}
