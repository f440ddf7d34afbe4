package model

import "time"

// Payout is a host disbursement for a booking.
type Payout struct {
	ID          int64
	BookingID   int64
	HostID      int64
	Amount      float64
	Status      string
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// EffectiveAt is the ordering instant: processed time when set, creation time
// otherwise.
func (p *Payout) EffectiveAt() time.Time {
	if p.ProcessedAt != nil {
		return *p.ProcessedAt
	}
	return p.CreatedAt
}
