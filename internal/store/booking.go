package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListBookings = `
SELECT b.id, b.code, b.vehicle_id, b.guest_id, COALESCE(u.name, b.guest_name),
       b.start_date, b.end_date, b.total_amount, b.status, b.trip_status,
       b.check_in_at, b.check_out_at, b.check_in_odometer, b.check_out_odometer,
       b.check_in_fuel, b.check_out_fuel, b.review_rating,
       b.created_at, b.updated_at
FROM bookings b
LEFT JOIN users u ON u.id = b.guest_id
WHERE b.vehicle_id = $1
ORDER BY b.created_at DESC`

type bookingStore struct {
	pool *pgxpool.Pool
}

func (s *bookingStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Booking, error) {
	rows, err := s.pool.Query(ctx, queryListBookings, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID,
			&b.Code,
			&b.VehicleID,
			&b.GuestID,
			&b.GuestName,
			&b.StartDate,
			&b.EndDate,
			&b.TotalAmount,
			&b.Status,
			&b.TripStatus,
			&b.CheckInAt,
			&b.CheckOutAt,
			&b.CheckInOdometer,
			&b.CheckOutOdometer,
			&b.CheckInFuel,
			&b.CheckOutFuel,
			&b.ReviewRating,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
