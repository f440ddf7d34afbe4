package service_test

import (
	"context"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

type mockVehicleStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Vehicle, error)
}

func (m *mockVehicleStore) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

type mockAuditLogStore struct {
	listByEntityFn func(ctx context.Context, entityType string, entityID int64) ([]model.AuditLog, error)
}

func (m *mockAuditLogStore) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]model.AuditLog, error) {
	if m.listByEntityFn != nil {
		return m.listByEntityFn(ctx, entityType, entityID)
	}
	return nil, nil
}

type mockBookingStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.Booking, error)
}

func (m *mockBookingStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Booking, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockServiceRecordStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.ServiceRecord, error)
}

func (m *mockServiceRecordStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ServiceRecord, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockClaimStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.Claim, error)
}

func (m *mockClaimStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Claim, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockClaimPhotoStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.ClaimPhoto, error)
}

func (m *mockClaimPhotoStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ClaimPhoto, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockPayoutStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.Payout, error)
}

func (m *mockPayoutStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Payout, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockPhotoStore struct {
	listByVehicleFn func(ctx context.Context, vehicleID int64) ([]model.VehiclePhoto, error)
}

func (m *mockPhotoStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.VehiclePhoto, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

type mockAdminStore struct {
	listByIDsFn func(ctx context.Context, ids []int64) ([]model.Admin, error)
	listCalls   int
}

func (m *mockAdminStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Admin, error) {
	m.listCalls++
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

type mockHostStore struct {
	listByIDsFn func(ctx context.Context, ids []int64) ([]model.Host, error)
	listCalls   int
}

func (m *mockHostStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Host, error) {
	m.listCalls++
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

type mockCache struct {
	getFn    func(ctx context.Context, key string) ([]byte, error)
	setFn    func(ctx context.Context, key string, value []byte) error
	getCalls int
	setCalls int
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.getCalls++
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte) error {
	m.setCalls++
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}
