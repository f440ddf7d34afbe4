package dto

import (
	"github.com/itwhiprentals/fleet-timeline/internal/model"
	"github.com/itwhiprentals/fleet-timeline/internal/service"
)

// TimelineQuery binds the timeline endpoint's query string. Filters are
// optional; empty strings mean "no filter". Validation of filter values is
// the service's job, so unknown enum values reach it and come back as a
// structured invalid-filter error rather than a bare binding failure.
type TimelineQuery struct {
	Category string `form:"category"`
	Severity string `form:"severity"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// ToParams converts the bound query into service params for the vehicle.
func (q TimelineQuery) ToParams(vehicleID int64) service.GetTimelineParams {
	params := service.GetTimelineParams{
		VehicleID: vehicleID,
		Page:      q.Page,
		Limit:     q.Limit,
	}
	if q.Category != "" {
		category := model.EventCategory(q.Category)
		params.Category = &category
	}
	if q.Severity != "" {
		severity := model.EventSeverity(q.Severity)
		params.Severity = &severity
	}
	return params
}
