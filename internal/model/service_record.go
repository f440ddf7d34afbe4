package model

import "time"

// ServiceRecord is one maintenance entry for a vehicle. A record may carry a
// verification by an admin, timestamped independently of the service itself.
type ServiceRecord struct {
	ID                int64
	VehicleID         int64
	ServiceType       string
	ServiceDate       time.Time
	ShopName          *string
	Cost              *float64
	NextDueDate       *time.Time
	NextDueMileage    *int
	VerifiedAt        *time.Time
	VerifiedByAdminID *int64
	CreatedAt         time.Time
}
