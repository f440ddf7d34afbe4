package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Stores struct {
	pool *pgxpool.Pool
}

func NewStores(pool *pgxpool.Pool) *Stores {
	return &Stores{pool: pool}
}

func (s *Stores) Vehicles() VehicleStore {
	return &vehicleStore{pool: s.pool}
}

func (s *Stores) AuditLogs() AuditLogStore {
	return &auditLogStore{pool: s.pool}
}

func (s *Stores) Bookings() BookingStore {
	return &bookingStore{pool: s.pool}
}

func (s *Stores) ServiceRecords() ServiceRecordStore {
	return &serviceRecordStore{pool: s.pool}
}

func (s *Stores) Claims() ClaimStore {
	return &claimStore{pool: s.pool}
}

func (s *Stores) ClaimPhotos() ClaimPhotoStore {
	return &claimPhotoStore{pool: s.pool}
}

func (s *Stores) Payouts() PayoutStore {
	return &payoutStore{pool: s.pool}
}

func (s *Stores) Photos() PhotoStore {
	return &photoStore{pool: s.pool}
}

func (s *Stores) Admins() AdminStore {
	return &adminStore{pool: s.pool}
}

func (s *Stores) Hosts() HostStore {
	return &hostStore{pool: s.pool}
}
