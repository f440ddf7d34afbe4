package model

import (
	"fmt"
	"time"
)

// Vehicle is the static fleet record. Document and compliance facts (VIN,
// registration, title, insurance selection) live on this row; the schema keeps
// no change history for them.
type Vehicle struct {
	ID                 int64
	HostID             int64
	Make               string
	Model              string
	Year               int
	VIN                *string
	CurrentMileage     *int
	RegistrationState  *string
	RegistrationExpiry *time.Time
	TitleStatus        *string
	InsuranceProvider  *string
	CreatedAt          time.Time
}

// DisplayName renders the "{year} {make} {model}" label used across the app.
func (v *Vehicle) DisplayName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

// Host is the owning partner's summary as needed by timeline responses and
// attribution.
type Host struct {
	ID                int64
	Name              string
	InsuranceProvider *string
	RevenueSplit      *float64
}

// Admin is a back-office operator referenced by audit rows, service
// verifications and claim reviews.
type Admin struct {
	ID   int64
	Name string
}
