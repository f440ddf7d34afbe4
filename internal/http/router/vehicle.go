package router

import (
	"github.com/gin-gonic/gin"

	"github.com/itwhiprentals/fleet-timeline/internal/http/handler"
)

// VehicleRouter sets up vehicle routes
func VehicleRouter(rg *gin.RouterGroup, h *handler.TimelineHandler) {
	rg.GET("/:id", h.GetVehicle)
	rg.GET("/:id/timeline", h.GetTimeline)
}
