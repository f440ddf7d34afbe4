package model

import "time"

type ClaimStatus string

const (
	ClaimStatusFiled       ClaimStatus = "FILED"
	ClaimStatusUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimStatusApproved    ClaimStatus = "APPROVED"
	ClaimStatusDenied      ClaimStatus = "DENIED"
	ClaimStatusPaid        ClaimStatus = "PAID"
)

// Claim is an insurance claim tied to a booking (and through it, a vehicle).
type Claim struct {
	ID                int64
	BookingID         int64
	Type              string
	EstimatedCost     *float64
	ApprovedAmount    *float64
	Deductible        *float64
	Status            ClaimStatus
	IncidentAt        *time.Time
	ReviewedAt        *time.Time
	ReviewedByAdminID *int64
	PaidAt            *time.Time
	CreatedAt         time.Time
}

// NetPayout is the approved amount minus the deductible, floored at zero for
// display.
func (c *Claim) NetPayout() float64 {
	if c.ApprovedAmount == nil {
		return 0
	}
	net := *c.ApprovedAmount
	if c.Deductible != nil {
		net -= *c.Deductible
	}
	if net < 0 {
		return 0
	}
	return net
}

// ClaimPhoto is one damage photo attached to a claim.
type ClaimPhoto struct {
	ID         int64
	ClaimID    int64
	UploadedAt time.Time
}
