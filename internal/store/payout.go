package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListPayouts = `
SELECT p.id, p.booking_id, p.host_id, p.amount, p.status, p.processed_at, p.created_at
FROM payouts p
JOIN bookings b ON b.id = p.booking_id
WHERE b.vehicle_id = $1
ORDER BY p.created_at DESC`

type payoutStore struct {
	pool *pgxpool.Pool
}

func (s *payoutStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Payout, error) {
	rows, err := s.pool.Query(ctx, queryListPayouts, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payout
	for rows.Next() {
		var p model.Payout
		if err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.HostID,
			&p.Amount,
			&p.Status,
			&p.ProcessedAt,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
