package handler_test

import (
	"context"

	"github.com/itwhiprentals/fleet-timeline/internal/service"
)

type mockTimelineService struct {
	getTimelineFn func(ctx context.Context, params service.GetTimelineParams) (*service.TimelineResult, error)
	getSummaryFn  func(ctx context.Context, vehicleID int64) (*service.VehicleSummary, error)
}

func (m *mockTimelineService) GetVehicleTimeline(ctx context.Context, params service.GetTimelineParams) (*service.TimelineResult, error) {
	if m.getTimelineFn != nil {
		return m.getTimelineFn(ctx, params)
	}
	return nil, nil
}

func (m *mockTimelineService) GetVehicleSummary(ctx context.Context, vehicleID int64) (*service.VehicleSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(ctx, vehicleID)
	}
	return nil, nil
}
