package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type TripStatus string

const (
	TripNotStarted TripStatus = "NOT_STARTED"
	TripActive     TripStatus = "ACTIVE"
	TripCompleted  TripStatus = "COMPLETED"
)

// Booking is a guest trip reservation. Check-in/out columns are filled by the
// trip flow; the review columns are filled when the guest leaves a review.
type Booking struct {
	ID               int64
	Code             string
	VehicleID        int64
	GuestID          *int64
	GuestName        string
	StartDate        time.Time
	EndDate          time.Time
	TotalAmount      float64
	Status           BookingStatus
	TripStatus       TripStatus
	CheckInAt        *time.Time
	CheckOutAt       *time.Time
	CheckInOdometer  *int
	CheckOutOdometer *int
	CheckInFuel      *string
	CheckOutFuel     *string
	ReviewRating     *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TripStartedAt is the authoritative instant for the trip-start event:
// check-in time when recorded, scheduled start otherwise.
func (b *Booking) TripStartedAt() time.Time {
	if b.CheckInAt != nil {
		return *b.CheckInAt
	}
	return b.StartDate
}

// TripCompletedAt is the authoritative instant for the trip-completion event:
// check-out time when recorded, scheduled end otherwise.
func (b *Booking) TripCompletedAt() time.Time {
	if b.CheckOutAt != nil {
		return *b.CheckOutAt
	}
	return b.EndDate
}

// MileageDriven is check-out odometer minus check-in odometer, or 0 when
// either reading is missing.
func (b *Booking) MileageDriven() int {
	if b.CheckInOdometer == nil || b.CheckOutOdometer == nil {
		return 0
	}
	return *b.CheckOutOdometer - *b.CheckInOdometer
}
