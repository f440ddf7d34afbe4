package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/itwhiprentals/fleet-timeline/common/logger"
	"github.com/itwhiprentals/fleet-timeline/internal/model"
	"github.com/itwhiprentals/fleet-timeline/internal/store"
)

// auditEntityType is the entity discriminator the change log uses for
// vehicle rows.
const auditEntityType = "vehicle"

// TimelineService assembles the activity history of a single vehicle from
// every source that references it.
type TimelineService interface {
	GetVehicleTimeline(ctx context.Context, params GetTimelineParams) (*TimelineResult, error)
	GetVehicleSummary(ctx context.Context, vehicleID int64) (*VehicleSummary, error)
}

// ResponseCache caches marshaled timeline responses. A nil implementation is
// never passed; the no-op form is used when caching is disabled.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// GetTimelineParams is the single inbound operation's input. Page and Limit
// of zero mean "use defaults"; anything else out of range is rejected.
type GetTimelineParams struct {
	VehicleID int64
	Category  *model.EventCategory
	Severity  *model.EventSeverity
	Page      int
	Limit     int
}

// VehicleSummary is the vehicle header block returned alongside the timeline.
type VehicleSummary struct {
	ID                 int64      `json:"id"`
	DisplayName        string     `json:"displayName"`
	Make               string     `json:"make"`
	Model              string     `json:"model"`
	Year               int        `json:"year"`
	VIN                *string    `json:"vin,omitempty"`
	CurrentMileage     *int       `json:"currentMileage,omitempty"`
	RegistrationState  *string    `json:"registrationState,omitempty"`
	RegistrationExpiry *time.Time `json:"registrationExpiry,omitempty"`
	Host               HostInfo   `json:"host"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// HostInfo is the owning host's block inside the vehicle summary.
type HostInfo struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	InsuranceProvider *string  `json:"insuranceProvider,omitempty"`
	RevenueSplit      *float64 `json:"revenueSplit,omitempty"`
}

// TimelineResult is the full aggregation output: header, one page of events,
// pagination of the filtered set, and statistics over the unfiltered set.
type TimelineResult struct {
	Vehicle    VehicleSummary           `json:"vehicle"`
	Events     []model.TimelineEvent    `json:"events"`
	Pagination model.Pagination         `json:"pagination"`
	Statistics model.TimelineStatistics `json:"statistics"`
}

// TimelineDeps wires the stores and cache the service reads from.
type TimelineDeps struct {
	Vehicles       store.VehicleStore
	AuditLogs      store.AuditLogStore
	Bookings       store.BookingStore
	ServiceRecords store.ServiceRecordStore
	Claims         store.ClaimStore
	ClaimPhotos    store.ClaimPhotoStore
	Payouts        store.PayoutStore
	Photos         store.PhotoStore
	Admins         store.AdminStore
	Hosts          store.HostStore

	Cache ResponseCache

	// Now is the clock used for synthetic events; nil means time.Now.
	Now func() time.Time
}

// TimelineOptions carries the aggregation policy knobs.
type TimelineOptions struct {
	DefaultPageSize   int
	MaxPageSize       int
	FetchTimeout      time.Duration
	ExpiryWindowDays  int
	ExpiryWarningDays int
	ExpiryErrorDays   int
}

type timelineService struct {
	deps TimelineDeps
	opts TimelineOptions
}

// NewTimelineService creates the timeline aggregation service.
func NewTimelineService(deps TimelineDeps, opts TimelineOptions) TimelineService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Cache == nil {
		deps.Cache = noopCache{}
	}
	return &timelineService{deps: deps, opts: opts}
}

// sourceData holds the raw rows of one aggregation run, exactly as fetched.
type sourceData struct {
	vehicle        *model.Vehicle
	auditLogs      []model.AuditLog
	bookings       []model.Booking
	serviceRecords []model.ServiceRecord
	claims         []model.Claim
	claimPhotos    []model.ClaimPhoto
	payouts        []model.Payout
	photos         []model.VehiclePhoto
}

func (s *timelineService) GetVehicleTimeline(ctx context.Context, params GetTimelineParams) (*TimelineResult, error) {
	if err := s.normalizeParams(&params); err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{VehicleID: logger.Ptr(params.VehicleID)})

	cacheKey := timelineCacheKey(params)
	if cached, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var result TimelineResult
		if err := json.Unmarshal(cached, &result); err == nil {
			slog.DebugContext(ctx, "timeline served from cache", "key", cacheKey)
			return &result, nil
		}
	}

	started := s.deps.Now()

	data, err := s.fetchSources(ctx, params.VehicleID)
	if err != nil {
		return nil, err
	}

	attr := s.resolveActors(ctx, data)

	events := s.assemble(data, attr, s.deps.Now())
	sortEvents(events)

	stats := computeStatistics(events, data)
	filtered := filterEvents(events, params.Category, params.Severity)
	page, pagination := paginate(filtered, params.Page, params.Limit)

	result := &TimelineResult{
		Vehicle:    s.vehicleSummary(data.vehicle, attr),
		Events:     page,
		Pagination: pagination,
		Statistics: stats,
	}

	slog.InfoContext(ctx, "timeline assembled",
		"totalEvents", stats.TotalEvents,
		"filteredEvents", pagination.Total,
		"page", pagination.Page,
		"durationMs", time.Since(started).Milliseconds(),
	)

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.deps.Cache.Set(ctx, cacheKey, encoded); err != nil {
			slog.WarnContext(ctx, "timeline cache write failed", "error", err)
		}
	}

	return result, nil
}

func (s *timelineService) GetVehicleSummary(ctx context.Context, vehicleID int64) (*VehicleSummary, error) {
	vehicle, err := s.deps.Vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	attr := s.resolveActors(ctx, &sourceData{vehicle: vehicle})
	summary := s.vehicleSummary(vehicle, attr)
	return &summary, nil
}

// normalizeParams validates filters and fills pagination defaults. Explicit
// out-of-range values are rejected rather than clamped.
func (s *timelineService) normalizeParams(params *GetTimelineParams) error {
	if params.Category != nil && !params.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, *params.Category)
	}
	if params.Severity != nil && !params.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidFilter, *params.Severity)
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = s.opts.DefaultPageSize
	}
	if params.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidPagination)
	}
	if params.Limit < 1 || params.Limit > s.opts.MaxPageSize {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, s.opts.MaxPageSize)
	}
	return nil
}

// fetchSources runs the first fan-out stage: the vehicle record plus all
// seven secondary sources concurrently, under one shared deadline. The first
// failure cancels the rest. The vehicle fetch is checked first so a missing
// vehicle reports as not-found even if a secondary fetch also failed.
func (s *timelineService) fetchSources(ctx context.Context, vehicleID int64) (*sourceData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	data := &sourceData{}
	var vehicleErr error
	sourceErrs := make([]error, 7)

	fetches := []struct {
		name string
		slot *error
		run  func(ctx context.Context) error
	}{
		{"vehicle", &vehicleErr, func(ctx context.Context) error {
			v, err := s.deps.Vehicles.GetByID(ctx, vehicleID)
			data.vehicle = v
			return err
		}},
		{"audit_logs", &sourceErrs[0], func(ctx context.Context) error {
			rows, err := s.deps.AuditLogs.ListByEntity(ctx, auditEntityType, vehicleID)
			data.auditLogs = rows
			return err
		}},
		{"bookings", &sourceErrs[1], func(ctx context.Context) error {
			rows, err := s.deps.Bookings.ListByVehicle(ctx, vehicleID)
			data.bookings = rows
			return err
		}},
		{"service_records", &sourceErrs[2], func(ctx context.Context) error {
			rows, err := s.deps.ServiceRecords.ListByVehicle(ctx, vehicleID)
			data.serviceRecords = rows
			return err
		}},
		{"claims", &sourceErrs[3], func(ctx context.Context) error {
			rows, err := s.deps.Claims.ListByVehicle(ctx, vehicleID)
			data.claims = rows
			return err
		}},
		{"claim_photos", &sourceErrs[4], func(ctx context.Context) error {
			rows, err := s.deps.ClaimPhotos.ListByVehicle(ctx, vehicleID)
			data.claimPhotos = rows
			return err
		}},
		{"payouts", &sourceErrs[5], func(ctx context.Context) error {
			rows, err := s.deps.Payouts.ListByVehicle(ctx, vehicleID)
			data.payouts = rows
			return err
		}},
		{"photos", &sourceErrs[6], func(ctx context.Context) error {
			rows, err := s.deps.Photos.ListByVehicle(ctx, vehicleID)
			data.photos = rows
			return err
		}},
	}

	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func(name string, errSlot *error, run func(ctx context.Context) error) {
			defer wg.Done()
			if err := run(ctx); err != nil {
				*errSlot = &SourceFetchError{Source: name, Err: err}
				cancel()
			}
		}(f.name, f.slot, f.run)
	}
	wg.Wait()

	if errors.Is(vehicleErr, store.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	if vehicleErr != nil && !isCancellation(vehicleErr) {
		return nil, vehicleErr
	}
	// Prefer the fetch that actually failed over ones that merely lost the
	// race to the resulting cancellation.
	for _, err := range sourceErrs {
		if err != nil && !isCancellation(err) {
			return nil, err
		}
	}
	if vehicleErr != nil {
		return nil, vehicleErr
	}
	for _, err := range sourceErrs {
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

// assemble runs every normalization rule and concatenates the results.
func (s *timelineService) assemble(data *sourceData, attr *Attribution, now time.Time) []model.TimelineEvent {
	var events []model.TimelineEvent
	events = append(events, auditEvents(data.auditLogs, attr)...)
	events = append(events, vehicleEvents(data.vehicle, attr)...)
	events = append(events, photoEvents(data.photos, attr)...)
	events = append(events, serviceEvents(data.serviceRecords, data.vehicle, attr)...)
	events = append(events, bookingEvents(data.bookings)...)
	events = append(events, payoutEvents(data.payouts, attr)...)
	events = append(events, claimEvents(data.claims, data.claimPhotos, data.vehicle, attr)...)
	events = append(events, s.syntheticEvents(data.vehicle, now)...)
	return events
}

func (s *timelineService) vehicleSummary(v *model.Vehicle, attr *Attribution) VehicleSummary {
	hostName, _ := attr.Host(v.HostID)
	host := HostInfo{ID: v.HostID, Name: hostName}
	if h, ok := attr.HostSummary(v.HostID); ok {
		host.InsuranceProvider = h.InsuranceProvider
		host.RevenueSplit = h.RevenueSplit
	}
	return VehicleSummary{
		ID:                 v.ID,
		DisplayName:        v.DisplayName(),
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		VIN:                v.VIN,
		CurrentMileage:     v.CurrentMileage,
		RegistrationState:  v.RegistrationState,
		RegistrationExpiry: v.RegistrationExpiry,
		Host:               host,
		CreatedAt:          v.CreatedAt,
	}
}

func timelineCacheKey(params GetTimelineParams) string {
	category, severity := "*", "*"
	if params.Category != nil {
		category = string(*params.Category)
	}
	if params.Severity != nil {
		severity = string(*params.Severity)
	}
	return fmt.Sprintf("timeline:%d:%s:%s:%d:%d", params.VehicleID, category, severity, params.Page, params.Limit)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// noopCache is used when no redis url is configured.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (noopCache) Set(ctx context.Context, key string, value []byte) error { return nil }
