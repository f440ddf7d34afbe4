package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

// Normalization rules, one per source. All of these are pure: they take the
// source's native rows plus the resolved attribution table and return
// canonical events. The timestamp each rule picks is the authoritative
// ordering key for its events.

// auditEvents maps each change-log row to one event. Category and severity
// pass through when the row carries valid values; the actor is resolved from
// admin id, host id, then embedded user name, in that priority order.
func auditEvents(rows []model.AuditLog, attr *Attribution) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, len(rows))
	for _, row := range rows {
		category := model.CategoryVehicle
		if row.Category != nil && model.EventCategory(*row.Category).Valid() {
			category = model.EventCategory(*row.Category)
		}
		severity := model.SeverityInfo
		if row.Severity != nil && model.EventSeverity(*row.Severity).Valid() {
			severity = model.EventSeverity(*row.Severity)
		}

		performedBy := systemActor
		performedByType := model.ActorSystem
		switch {
		case row.AdminID != nil:
			performedBy, performedByType = attr.Admin(*row.AdminID)
		case row.HostID != nil:
			performedBy, performedByType = attr.Host(*row.HostID)
		case row.UserName != nil && *row.UserName != "":
			performedBy, performedByType = *row.UserName, model.ActorUser
		}

		metadata := map[string]any{}
		if len(row.OldValues) > 0 {
			metadata["oldValues"] = json.RawMessage(row.OldValues)
		}
		if len(row.NewValues) > 0 {
			metadata["newValues"] = json.RawMessage(row.NewValues)
		}
		if len(row.Metadata) > 0 {
			metadata["details"] = json.RawMessage(row.Metadata)
		}

		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("audit-%d", row.ID),
			Category:        category,
			Action:          row.Action,
			Description:     prettyAction(row.Action),
			PerformedBy:     performedBy,
			PerformedByType: performedByType,
			Severity:        severity,
			Metadata:        metadata,
			Timestamp:       row.CreatedAt,
			SortRank:        model.RankActivityLog,
		})
	}
	return events
}

// vehicleEvents emits the creation anchor plus one event per document and
// compliance fact present on the vehicle record. The schema keeps no history
// for these fields, so every fact is anchored at vehicle-creation time and
// attributed to the owning host.
func vehicleEvents(v *model.Vehicle, attr *Attribution) []model.TimelineEvent {
	hostName, hostType := attr.Host(v.HostID)

	events := []model.TimelineEvent{{
		ID:              fmt.Sprintf("vehicle-%d-created", v.ID),
		Category:        model.CategoryVehicle,
		Action:          model.ActionVehicleCreated,
		Description:     fmt.Sprintf("%s added to the fleet", v.DisplayName()),
		PerformedBy:     hostName,
		PerformedByType: hostType,
		Severity:        model.SeverityInfo,
		Timestamp:       v.CreatedAt,
		SortRank:        model.RankVehicleCreated,
	}}

	if v.VIN != nil && *v.VIN != "" {
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("vehicle-%d-vin", v.ID),
			Category:        model.CategoryDocument,
			Action:          model.ActionVINAdded,
			Description:     fmt.Sprintf("VIN %s recorded", *v.VIN),
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityInfo,
			Timestamp:       v.CreatedAt,
			SortRank:        model.RankDocument,
		})
	}

	if v.RegistrationState != nil || v.RegistrationExpiry != nil {
		desc := "Registration details added"
		metadata := map[string]any{}
		if v.RegistrationState != nil {
			desc = fmt.Sprintf("Registration (%s) added", *v.RegistrationState)
			metadata["state"] = *v.RegistrationState
		}
		if v.RegistrationExpiry != nil {
			metadata["expiresAt"] = v.RegistrationExpiry.Format("2006-01-02")
		}
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("vehicle-%d-registration", v.ID),
			Category:        model.CategoryDocument,
			Action:          model.ActionRegistrationAdded,
			Description:     desc,
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityInfo,
			Metadata:        metadata,
			Timestamp:       v.CreatedAt,
			SortRank:        model.RankDocument,
		})
	}

	if v.TitleStatus != nil && *v.TitleStatus != "" {
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("vehicle-%d-title", v.ID),
			Category:        model.CategoryCompliance,
			Action:          model.ActionTitleStatusSet,
			Description:     fmt.Sprintf("Title status recorded as %s", *v.TitleStatus),
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityInfo,
			Timestamp:       v.CreatedAt,
			SortRank:        model.RankDocument,
		})
	}

	if v.InsuranceProvider != nil && *v.InsuranceProvider != "" {
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("vehicle-%d-insurance", v.ID),
			Category:        model.CategoryCompliance,
			Action:          model.ActionInsuranceSelected,
			Description:     fmt.Sprintf("Insurance provider set to %s", *v.InsuranceProvider),
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityInfo,
			Timestamp:       v.CreatedAt,
			SortRank:        model.RankDocument,
		})
	}

	return events
}

// photoEvents groups uploads by calendar date (UTC): one summary event per
// date bucket carrying the count and whether any upload had location data.
// The hero photo additionally emits its own event regardless of grouping.
func photoEvents(photos []model.VehiclePhoto, attr *Attribution) []model.TimelineEvent {
	type bucket struct {
		count       int
		hasLocation bool
		latest      time.Time
		hostID      *int64
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)
	var events []model.TimelineEvent

	for _, p := range photos {
		day := p.CreatedAt.UTC().Format("20060102")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
			order = append(order, day)
		}
		b.count++
		if p.HasLocation {
			b.hasLocation = true
		}
		if p.CreatedAt.After(b.latest) {
			b.latest = p.CreatedAt
			b.hostID = p.UploadedByHostID
		}

		if p.IsHero {
			performedBy, performedByType := systemActor, model.ActorSystem
			if p.UploadedByHostID != nil {
				performedBy, performedByType = attr.Host(*p.UploadedByHostID)
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("photo-%d-hero", p.ID),
				Category:        model.CategoryPhoto,
				Action:          model.ActionHeroPhotoSet,
				Description:     "Hero photo updated",
				PerformedBy:     performedBy,
				PerformedByType: performedByType,
				Severity:        model.SeverityInfo,
				Timestamp:       p.CreatedAt,
				SortRank:        model.RankPhoto,
			})
		}
	}

	for _, day := range order {
		b := buckets[day]
		performedBy, performedByType := systemActor, model.ActorSystem
		if b.hostID != nil {
			performedBy, performedByType = attr.Host(*b.hostID)
		}
		desc := fmt.Sprintf("%d photos uploaded", b.count)
		if b.count == 1 {
			desc = "1 photo uploaded"
		}
		if b.hasLocation {
			desc += " (with location data)"
		}
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("photos-%s", day),
			Category:        model.CategoryPhoto,
			Action:          model.ActionPhotosUploaded,
			Description:     desc,
			PerformedBy:     performedBy,
			PerformedByType: performedByType,
			Severity:        model.SeverityInfo,
			Metadata:        map[string]any{"count": b.count, "hasLocation": b.hasLocation},
			Timestamp:       b.latest,
			SortRank:        model.RankPhoto,
		})
	}

	return events
}

// serviceEvents emits one completion event per record at the service date,
// plus a verification event at verification time when an admin verified it.
func serviceEvents(records []model.ServiceRecord, v *model.Vehicle, attr *Attribution) []model.TimelineEvent {
	hostName, hostType := attr.Host(v.HostID)

	var events []model.TimelineEvent
	for _, r := range records {
		desc := fmt.Sprintf("%s completed", r.ServiceType)
		if r.ShopName != nil && *r.ShopName != "" {
			desc += fmt.Sprintf(" at %s", *r.ShopName)
		}
		if r.Cost != nil {
			desc += fmt.Sprintf(" for %s", formatMoney(*r.Cost))
		}

		metadata := map[string]any{"serviceType": r.ServiceType}
		if r.NextDueDate != nil {
			metadata["nextDueDate"] = r.NextDueDate.Format("2006-01-02")
		}
		if r.NextDueMileage != nil {
			metadata["nextDueMileage"] = *r.NextDueMileage
		}

		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("service-%d", r.ID),
			Category:        model.CategoryService,
			Action:          model.ActionServiceCompleted,
			Description:     desc,
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityInfo,
			Metadata:        metadata,
			Timestamp:       r.ServiceDate,
			SortRank:        model.RankService,
		})

		if r.VerifiedAt != nil {
			performedBy, performedByType := systemActor, model.ActorSystem
			if r.VerifiedByAdminID != nil {
				performedBy, performedByType = attr.Admin(*r.VerifiedByAdminID)
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("service-%d-verified", r.ID),
				Category:        model.CategoryService,
				Action:          model.ActionServiceVerified,
				Description:     fmt.Sprintf("%s verified", r.ServiceType),
				PerformedBy:     performedBy,
				PerformedByType: performedByType,
				Severity:        model.SeverityInfo,
				Timestamp:       *r.VerifiedAt,
				SortRank:        model.RankService,
			})
		}
	}
	return events
}

// bookingEvents emits up to four events per booking, each gated on booking
// state and each ordered by a different native timestamp: confirmation at
// creation, trip start at check-in (scheduled start as fallback), trip
// completion at check-out (scheduled end as fallback), and the review at the
// booking's last update.
func bookingEvents(bookings []model.Booking) []model.TimelineEvent {
	var events []model.TimelineEvent
	for _, b := range bookings {
		if b.Status == model.BookingPending || b.Status == model.BookingCancelled {
			continue
		}

		guest := b.GuestName
		if guest == "" {
			guest = "Guest"
		}

		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("booking-%d-confirmed", b.ID),
			Category:        model.CategoryBooking,
			Action:          model.ActionBookingConfirmed,
			Description:     fmt.Sprintf("Booking %s confirmed for %s", b.Code, formatMoney(b.TotalAmount)),
			PerformedBy:     guest,
			PerformedByType: model.ActorGuest,
			Severity:        model.SeverityInfo,
			Metadata:        map[string]any{"bookingCode": b.Code, "totalAmount": b.TotalAmount},
			Timestamp:       b.CreatedAt,
			SortRank:        model.RankBooking,
		})

		if b.TripStatus == model.TripActive || b.TripStatus == model.TripCompleted {
			desc := fmt.Sprintf("Trip started for booking %s", b.Code)
			metadata := map[string]any{"bookingCode": b.Code}
			if b.CheckInOdometer != nil {
				metadata["odometer"] = *b.CheckInOdometer
			}
			if b.CheckInFuel != nil {
				metadata["fuelLevel"] = *b.CheckInFuel
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("booking-%d-trip-started", b.ID),
				Category:        model.CategoryBooking,
				Action:          model.ActionTripStarted,
				Description:     desc,
				PerformedBy:     guest,
				PerformedByType: model.ActorGuest,
				Severity:        model.SeverityInfo,
				Metadata:        metadata,
				Timestamp:       b.TripStartedAt(),
				SortRank:        model.RankBooking,
			})
		}

		if b.TripStatus == model.TripCompleted {
			desc := fmt.Sprintf("Trip completed for booking %s", b.Code)
			metadata := map[string]any{"bookingCode": b.Code}
			if miles := b.MileageDriven(); miles > 0 {
				desc += fmt.Sprintf(" (+%d miles)", miles)
				metadata["milesDriven"] = miles
			}
			if b.CheckOutOdometer != nil {
				metadata["odometer"] = *b.CheckOutOdometer
			}
			if b.CheckOutFuel != nil {
				metadata["fuelLevel"] = *b.CheckOutFuel
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("booking-%d-trip-completed", b.ID),
				Category:        model.CategoryBooking,
				Action:          model.ActionTripCompleted,
				Description:     desc,
				PerformedBy:     guest,
				PerformedByType: model.ActorGuest,
				Severity:        model.SeverityInfo,
				Metadata:        metadata,
				Timestamp:       b.TripCompletedAt(),
				SortRank:        model.RankBooking,
			})
		}

		if b.ReviewRating != nil {
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("booking-%d-review", b.ID),
				Category:        model.CategoryReview,
				Action:          model.ActionReviewReceived,
				Description:     fmt.Sprintf("%d-star review received for booking %s", *b.ReviewRating, b.Code),
				PerformedBy:     guest,
				PerformedByType: model.ActorGuest,
				Severity:        model.SeverityInfo,
				Metadata:        map[string]any{"bookingCode": b.Code, "rating": *b.ReviewRating},
				Timestamp:       b.UpdatedAt,
				SortRank:        model.RankBooking,
			})
		}
	}
	return events
}

// payoutEvents emits one event per payout, ordered by processed time when set
// and creation time otherwise.
func payoutEvents(payouts []model.Payout, attr *Attribution) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, len(payouts))
	for _, p := range payouts {
		hostName, _ := attr.Host(p.HostID)
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("payout-%d", p.ID),
			Category:        model.CategoryPayout,
			Action:          model.ActionPayoutProcessed,
			Description:     fmt.Sprintf("Payout of %s processed to %s", formatMoney(p.Amount), hostName),
			PerformedBy:     systemActor,
			PerformedByType: model.ActorSystem,
			Severity:        model.SeverityInfo,
			Metadata:        map[string]any{"amount": p.Amount, "status": p.Status},
			Timestamp:       p.EffectiveAt(),
			SortRank:        model.RankPayout,
		})
	}
	return events
}

// claimEvents emits up to four events per claim: filing (WARNING), damage
// photos at first upload, the review outcome at review time, and payment at
// paid time. Net payout shown on the paid event is approved amount minus
// deductible, never negative.
func claimEvents(claims []model.Claim, photos []model.ClaimPhoto, v *model.Vehicle, attr *Attribution) []model.TimelineEvent {
	photosByClaim := make(map[int64][]model.ClaimPhoto)
	for _, p := range photos {
		photosByClaim[p.ClaimID] = append(photosByClaim[p.ClaimID], p)
	}

	hostName, hostType := attr.Host(v.HostID)

	var events []model.TimelineEvent
	for _, c := range claims {
		filedDesc := fmt.Sprintf("%s claim filed", c.Type)
		if c.EstimatedCost != nil {
			filedDesc += fmt.Sprintf(" (estimated %s)", formatMoney(*c.EstimatedCost))
		}
		metadata := map[string]any{"claimType": c.Type, "status": string(c.Status)}
		if c.IncidentAt != nil {
			metadata["incidentAt"] = c.IncidentAt.Format(time.RFC3339)
		}
		events = append(events, model.TimelineEvent{
			ID:              fmt.Sprintf("claim-%d-filed", c.ID),
			Category:        model.CategoryClaim,
			Action:          model.ActionClaimFiled,
			Description:     filedDesc,
			PerformedBy:     hostName,
			PerformedByType: hostType,
			Severity:        model.SeverityWarning,
			Metadata:        metadata,
			Timestamp:       c.CreatedAt,
			SortRank:        model.RankClaim,
		})

		if attached := photosByClaim[c.ID]; len(attached) > 0 {
			first := attached[0].UploadedAt
			for _, p := range attached[1:] {
				if p.UploadedAt.Before(first) {
					first = p.UploadedAt
				}
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("claim-%d-photos", c.ID),
				Category:        model.CategoryClaim,
				Action:          model.ActionClaimPhotos,
				Description:     fmt.Sprintf("%d damage photos uploaded", len(attached)),
				PerformedBy:     hostName,
				PerformedByType: hostType,
				Severity:        model.SeverityInfo,
				Metadata:        map[string]any{"count": len(attached)},
				Timestamp:       first,
				SortRank:        model.RankClaim,
			})
		}

		if c.ReviewedAt != nil {
			action := model.ActionClaimReviewed
			desc := "Claim reviewed"
			severity := model.SeverityInfo
			switch c.Status {
			case model.ClaimStatusApproved, model.ClaimStatusPaid:
				action = model.ActionClaimApproved
				desc = "Claim approved"
				if c.ApprovedAmount != nil {
					desc += fmt.Sprintf(" for %s", formatMoney(*c.ApprovedAmount))
				}
			case model.ClaimStatusDenied:
				action = model.ActionClaimDenied
				desc = "Claim denied"
				severity = model.SeverityWarning
			}
			performedBy, performedByType := systemActor, model.ActorSystem
			if c.ReviewedByAdminID != nil {
				performedBy, performedByType = attr.Admin(*c.ReviewedByAdminID)
			}
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("claim-%d-reviewed", c.ID),
				Category:        model.CategoryClaim,
				Action:          action,
				Description:     desc,
				PerformedBy:     performedBy,
				PerformedByType: performedByType,
				Severity:        severity,
				Timestamp:       *c.ReviewedAt,
				SortRank:        model.RankClaim,
			})
		}

		if c.PaidAt != nil {
			events = append(events, model.TimelineEvent{
				ID:              fmt.Sprintf("claim-%d-paid", c.ID),
				Category:        model.CategoryClaim,
				Action:          model.ActionClaimPaid,
				Description:     fmt.Sprintf("Claim paid, net %s after deductible", formatMoney(c.NetPayout())),
				PerformedBy:     systemActor,
				PerformedByType: model.ActorSystem,
				Severity:        model.SeverityInfo,
				Metadata:        map[string]any{"netPayout": c.NetPayout()},
				Timestamp:       *c.PaidAt,
				SortRank:        model.RankClaim,
			})
		}
	}
	return events
}

// prettyAction turns an audit action like "VEHICLE_PRICE_UPDATED" into
// "Vehicle price updated".
func prettyAction(action string) string {
	words := strings.Split(strings.ToLower(action), "_")
	if len(words) == 0 || words[0] == "" {
		return action
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
