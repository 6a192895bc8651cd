package app

import (
	"essay_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		essays := api.Group("/essays")
		{
			essays.POST("", c.essay.Submit)
			essays.GET("", c.essay.List)
			essays.GET("/trajectory", c.essay.Trajectory)
			essays.POST("/analysis", c.essay.Analyze)
			essays.GET("/:id", c.essay.Get)
			essays.DELETE("/:id", c.essay.Delete)
		}

		kaoyan := api.Group("/kaoyan")
		{
			kaoyan.POST("", c.kaoyan.Submit)
			kaoyan.GET("", c.kaoyan.List)
			kaoyan.GET("/trajectory", c.kaoyan.Trajectory)
			kaoyan.POST("/analysis", c.kaoyan.Analyze)
			kaoyan.GET("/:id", c.kaoyan.Get)
			kaoyan.DELETE("/:id", c.kaoyan.Delete)
		}
	}
}
