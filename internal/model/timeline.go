package model

import "time"

// EventCategory classifies a timeline event. The source system carried separate
// type and category axes with overlapping values; they are collapsed into this
// single enum.
type EventCategory string

const (
	CategoryVehicle     EventCategory = "VEHICLE"
	CategoryDocument    EventCategory = "DOCUMENT"
	CategoryPhoto       EventCategory = "PHOTO"
	CategoryActivityLog EventCategory = "ACTIVITY_LOG"
	CategoryService     EventCategory = "SERVICE"
	CategoryBooking     EventCategory = "BOOKING"
	CategoryReview      EventCategory = "REVIEW"
	CategoryPayout      EventCategory = "PAYOUT"
	CategoryClaim       EventCategory = "CLAIM"
	CategoryCompliance  EventCategory = "COMPLIANCE"
)

// Valid reports whether the category is one of the known values.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryVehicle, CategoryDocument, CategoryPhoto, CategoryActivityLog,
		CategoryService, CategoryBooking, CategoryReview, CategoryPayout,
		CategoryClaim, CategoryCompliance:
		return true
	}
	return false
}

type EventSeverity string

const (
	SeverityInfo     EventSeverity = "INFO"
	SeverityWarning  EventSeverity = "WARNING"
	SeverityError    EventSeverity = "ERROR"
	SeverityCritical EventSeverity = "CRITICAL"
)

func (s EventSeverity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// ActorType classifies who performed an event.
type ActorType string

const (
	ActorSystem ActorType = "SYSTEM"
	ActorAdmin  ActorType = "ADMIN"
	ActorHost   ActorType = "HOST"
	ActorGuest  ActorType = "GUEST"
	ActorUser   ActorType = "USER"
)

// Event actions. Audit-log rows pass their own action strings through, so the
// action field stays an open string; everything the aggregator emits itself
// uses one of these.
const (
	ActionVehicleCreated     = "VEHICLE_CREATED"
	ActionVINAdded           = "VIN_ADDED"
	ActionRegistrationAdded  = "REGISTRATION_ADDED"
	ActionTitleStatusSet     = "TITLE_STATUS_SET"
	ActionInsuranceSelected  = "INSURANCE_SELECTED"
	ActionPhotosUploaded     = "PHOTOS_UPLOADED"
	ActionHeroPhotoSet       = "HERO_PHOTO_SET"
	ActionServiceCompleted   = "SERVICE_COMPLETED"
	ActionServiceVerified    = "SERVICE_VERIFIED"
	ActionBookingConfirmed   = "BOOKING_CONFIRMED"
	ActionTripStarted        = "TRIP_STARTED"
	ActionTripCompleted      = "TRIP_COMPLETED"
	ActionReviewReceived     = "REVIEW_RECEIVED"
	ActionPayoutProcessed    = "PAYOUT_PROCESSED"
	ActionClaimFiled         = "CLAIM_FILED"
	ActionClaimPhotos        = "CLAIM_PHOTOS_UPLOADED"
	ActionClaimApproved      = "CLAIM_APPROVED"
	ActionClaimDenied        = "CLAIM_DENIED"
	ActionClaimReviewed      = "CLAIM_REVIEWED"
	ActionClaimPaid          = "CLAIM_PAID"
	ActionRegistrationExpiry = "REGISTRATION_EXPIRY_WARNING"
	ActionRegistrationLapsed = "REGISTRATION_EXPIRED"
)

// TimelineEvent is the canonical, source-agnostic record every source row is
// normalized into. It is built fresh per aggregation run and never stored.
//
// ID is deterministic: derived from the source type and source record id (plus
// a date bucket for grouped events), so repeated runs over unchanged data
// produce identical ids.
type TimelineEvent struct {
	ID              string         `json:"id"`
	Category        EventCategory  `json:"category"`
	Action          string         `json:"action"`
	Description     string         `json:"description"`
	PerformedBy     string         `json:"performedBy"`
	PerformedByType ActorType      `json:"performedByType"`
	Severity        EventSeverity  `json:"severity"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`

	// SortRank breaks timestamp ties deterministically: lower ranks sort
	// earlier (newer position) within an identical timestamp. The
	// vehicle-creation anchor has the highest rank so it stays the final
	// (oldest) event of its vehicle.
	SortRank int `json:"-"`
}

// Tie-break ranks by source kind. Within one timestamp the order is fixed
// regardless of fetch completion order.
const (
	RankActivityLog = iota
	RankPhoto
	RankService
	RankBooking
	RankPayout
	RankClaim
	RankSynthetic
	RankDocument
	RankVehicleCreated
)

// Pagination describes the returned window of a filtered timeline.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// SourceCounts reports how many raw records each source fetch returned,
// independent of how many events each produced.
type SourceCounts struct {
	AuditLogs      int `json:"auditLogs"`
	Bookings       int `json:"bookings"`
	ServiceRecords int `json:"serviceRecords"`
	Claims         int `json:"claims"`
	Payouts        int `json:"payouts"`
	Photos         int `json:"photos"`
	ClaimPhotos    int `json:"claimPhotos"`
}

// TimelineStatistics is computed over the full unfiltered timeline, never the
// returned page.
type TimelineStatistics struct {
	TotalEvents  int                   `json:"totalEvents"`
	ByCategory   map[EventCategory]int `json:"byCategory"`
	BySeverity   map[EventSeverity]int `json:"bySeverity"`
	SourceCounts SourceCounts          `json:"sourceCounts"`
}
