package app

import (
	"creator_insight_backend/docs"
	"creator_insight_backend/internal/middleware"
	"creator_insight_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 系统
	router.GET("/", c.health.Root)
	router.GET("/test", c.health.TestDatabase)
	router.GET("/health", c.health.HealthCheck)

	// 2. 认证
	a.registerAuthRoutes(router, c)

	// 3. 仪表盘，可选认证
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.TryAuthMiddleware(a.services.auth))
	{
		dashboard.GET("/summary", c.dashboard.GetSummary)
		dashboard.GET("/activity", c.dashboard.GetActivity)
	}

	// 4. 课程分析
	a.registerCourseRoutes(router, c)

	// 5. AI 洞察、作品集与成就
	a.registerCreatorRoutes(router, c)
}

func (a *App) registerAuthRoutes(router *gin.Engine, c *controllers) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(a.services.auth), c.auth.Me)
	}
}

func (a *App) registerCourseRoutes(router *gin.Engine, c *controllers) {
	courses := router.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.GET("/:id", c.course.GetCourse)
		courses.GET("/:id/enrollments", c.course.GetEnrollments)
		courses.GET("/:id/completion", c.course.GetCompletion)
		courses.GET("/:id/watchtime", c.course.GetWatchTime)
		courses.GET("/:id/dropoff", c.course.GetDropOff)
		courses.GET("/:id/assignments", c.course.GetAssignments)
		courses.GET("/:id/reviews", c.course.GetReviews)
	}
}

func (a *App) registerCreatorRoutes(router *gin.Engine, c *controllers) {
	ai := router.Group("/ai")
	{
		ai.POST("/next-topic", c.insight.NextTopic)
		ai.POST("/improvement-tips", c.insight.ImprovementTips)
		ai.POST("/summarize-reviews", c.insight.SummarizeReviews)
	}

	router.POST("/portfolio/generate", c.portfolio.GeneratePortfolio)
	router.POST("/resume/generate", c.portfolio.GenerateResume)

	achievements := router.Group("/achievements")
	{
		achievements.GET("/level", c.achievement.GetLevel)
		achievements.GET("/progress", c.achievement.GetProgress)
		achievements.POST("/update", c.achievement.Update)
	}
}
