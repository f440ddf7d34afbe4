package service

import (
	"time"

	"github.com/itwhiprentals/fleet-timeline/core/config"
	"github.com/itwhiprentals/fleet-timeline/internal/store"
)

// Services bundles all service implementations
type Services struct {
	Timeline TimelineService
}

// NewServices creates all services with their dependencies wired
func NewServices(stores *store.Stores, cache ResponseCache, cfg config.TimelineConfig) *Services {
	deps := TimelineDeps{
		Vehicles:       stores.Vehicles(),
		AuditLogs:      stores.AuditLogs(),
		Bookings:       stores.Bookings(),
		ServiceRecords: stores.ServiceRecords(),
		Claims:         stores.Claims(),
		ClaimPhotos:    stores.ClaimPhotos(),
		Payouts:        stores.Payouts(),
		Photos:         stores.Photos(),
		Admins:         stores.Admins(),
		Hosts:          stores.Hosts(),
		Cache:          cache,
	}
	opts := TimelineOptions{
		DefaultPageSize:   cfg.DefaultPageSize,
		MaxPageSize:       cfg.MaxPageSize,
		FetchTimeout:      time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		ExpiryWindowDays:  cfg.ExpiryWindowDays,
		ExpiryWarningDays: cfg.ExpiryWarningDays,
		ExpiryErrorDays:   cfg.ExpiryErrorDays,
	}
	return &Services{
		Timeline: NewTimelineService(deps, opts),
	}
}
