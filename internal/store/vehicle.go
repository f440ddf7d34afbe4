package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryGetVehicle = `
SELECT id, host_id, make, model, year, vin, current_mileage,
       registration_state, registration_expiry, title_status,
       insurance_provider, created_at
FROM vehicles
WHERE id = $1`

type vehicleStore struct {
	pool *pgxpool.Pool
}

func (s *vehicleStore) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	err := s.pool.QueryRow(ctx, queryGetVehicle, id).Scan(
		&v.ID,
		&v.HostID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.VIN,
		&v.CurrentMileage,
		&v.RegistrationState,
		&v.RegistrationExpiry,
		&v.TitleStatus,
		&v.InsuranceProvider,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
