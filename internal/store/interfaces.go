package store

import (
	"context"
	"errors"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// VehicleStore defines the contract for vehicle record access
type VehicleStore interface {
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
}

// AuditLogStore defines the contract for change-log access
type AuditLogStore interface {
	ListByEntity(ctx context.Context, entityType string, entityID int64) ([]model.AuditLog, error)
}

// BookingStore defines the contract for booking access
type BookingStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Booking, error)
}

// ServiceRecordStore defines the contract for maintenance record access
type ServiceRecordStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ServiceRecord, error)
}

// ClaimStore defines the contract for insurance claim access. Claims attach to
// bookings, so vehicle scoping goes through the booking table.
type ClaimStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Claim, error)
}

// ClaimPhotoStore defines the contract for claim damage-photo access
type ClaimPhotoStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ClaimPhoto, error)
}

// PayoutStore defines the contract for payout access
type PayoutStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Payout, error)
}

// PhotoStore defines the contract for listing-photo access
type PhotoStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]model.VehiclePhoto, error)
}

// AdminStore resolves admin actors. ListByIDs is the batch form the
// attribution stage depends on; it must issue a single query.
type AdminStore interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Admin, error)
}

// HostStore resolves host actors, batch form as with AdminStore.
type HostStore interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Host, error)
}
