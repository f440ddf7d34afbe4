package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListPhotos = `
SELECT id, vehicle_id, is_hero, location IS NOT NULL, uploaded_by_host_id, created_at
FROM vehicle_photos
WHERE vehicle_id = $1
ORDER BY created_at ASC`

type photoStore struct {
	pool *pgxpool.Pool
}

func (s *photoStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.VehiclePhoto, error) {
	rows, err := s.pool.Query(ctx, queryListPhotos, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.VehiclePhoto
	for rows.Next() {
		var p model.VehiclePhoto
		if err := rows.Scan(
			&p.ID,
			&p.VehicleID,
			&p.IsHero,
			&p.HasLocation,
			&p.UploadedByHostID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
