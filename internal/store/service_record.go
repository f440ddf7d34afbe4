package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListServiceRecords = `
SELECT id, vehicle_id, service_type, service_date, shop_name, cost,
       next_due_date, next_due_mileage, verified_at, verified_by_admin_id,
       created_at
FROM service_records
WHERE vehicle_id = $1
ORDER BY service_date DESC`

type serviceRecordStore struct {
	pool *pgxpool.Pool
}

func (s *serviceRecordStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ServiceRecord, error) {
	rows, err := s.pool.Query(ctx, queryListServiceRecords, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ServiceRecord
	for rows.Next() {
		var r model.ServiceRecord
		if err := rows.Scan(
			&r.ID,
			&r.VehicleID,
			&r.ServiceType,
			&r.ServiceDate,
			&r.ShopName,
			&r.Cost,
			&r.NextDueDate,
			&r.NextDueMileage,
			&r.VerifiedAt,
			&r.VerifiedByAdminID,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
