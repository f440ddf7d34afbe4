package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itwhiprentals/fleet-timeline/internal/http/dto"
	"github.com/itwhiprentals/fleet-timeline/internal/service"
)

type TimelineHandler struct {
	timelineService service.TimelineService
}

func NewTimelineHandler(timelineService service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// GetTimeline handles GET /api/v1/vehicles/:id/timeline
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	var query dto.TimelineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.WarnContext(ctx, "invalid timeline query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.timelineService.GetVehicleTimeline(ctx, query.ToParams(vehicleID))
	if err != nil {
		var sfe *service.SourceFetchError
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		case errors.Is(err, service.ErrInvalidFilter), errors.Is(err, service.ErrInvalidPagination):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &sfe):
			slog.ErrorContext(ctx, "source fetch failed", "error", err, "source", sfe.Source, "vehicle_id", vehicleID)
			c.JSON(http.StatusBadGateway, gin.H{"error": "a timeline source is unavailable"})
		default:
			slog.ErrorContext(ctx, "failed to assemble timeline", "error", err, "vehicle_id", vehicleID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble timeline"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVehicle handles GET /api/v1/vehicles/:id
func (h *TimelineHandler) GetVehicle(c *gin.Context) {
	ctx := c.Request.Context()

	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	summary, err := h.timelineService.GetVehicleSummary(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load vehicle", "error", err, "vehicle_id", vehicleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vehicle"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
