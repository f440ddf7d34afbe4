package router

import (
	"github.com/gin-gonic/gin"

	"github.com/itwhiprentals/fleet-timeline/internal/http/handler"
	"github.com/itwhiprentals/fleet-timeline/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		timelineHandler := handler.NewTimelineHandler(services.Timeline)
		VehicleRouter(v1.Group("/vehicles"), timelineHandler)
	}
}
