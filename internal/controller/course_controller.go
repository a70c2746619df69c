package controller

import (
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Success 200 {array} service.CourseItem
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	respond(ctx, c.CourseService.ListCourses(ctx.Request.Context()))
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} model.Course
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetCourse(ctx.Request.Context(), ctx.Param("id")))
}

// @Summary 报名趋势
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Param period query string false "时间粒度" Enums(daily, weekly, monthly) default(daily)
// @Success 200 {array} service.SeriesItem
// @Failure 400 {object} util.Response
// @Router /courses/{id}/enrollments [get]
func (c *CourseController) GetEnrollments(ctx *gin.Context) {
	period := model.Timeframe(ctx.DefaultQuery("period", string(model.Daily)))

	result, err := c.CourseService.GetEnrollments(ctx.Request.Context(), ctx.Param("id"), period)
	if err != nil {
		if errors.Is(err, util.ErrInvalidPeriod) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	respond(ctx, result)
}

// @Summary 完成率
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} service.CompletionRateResponse
// @Router /courses/{id}/completion [get]
func (c *CourseController) GetCompletion(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetCompletion(ctx.Request.Context(), ctx.Param("id")))
}

// @Summary 平均观看时长（分钟）
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} service.WatchTimeResponse
// @Router /courses/{id}/watchtime [get]
func (c *CourseController) GetWatchTime(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetWatchTime(ctx.Request.Context(), ctx.Param("id")))
}

// @Summary 流失曲线
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} service.DropOffResponse
// @Router /courses/{id}/dropoff [get]
func (c *CourseController) GetDropOff(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetDropOff(ctx.Request.Context(), ctx.Param("id")))
}

// @Summary 作业提交率
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} service.AssignmentStatsResponse
// @Router /courses/{id}/assignments [get]
func (c *CourseController) GetAssignments(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetAssignments(ctx.Request.Context(), ctx.Param("id")))
}

// @Summary 课程评价
// @Tags 课程分析
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} service.ReviewsResponse
// @Router /courses/{id}/reviews [get]
func (c *CourseController) GetReviews(ctx *gin.Context) {
	respond(ctx, c.CourseService.GetReviews(ctx.Request.Context(), ctx.Param("id")))
}
