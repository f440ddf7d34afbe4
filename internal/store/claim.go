package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListClaims = `
SELECT c.id, c.booking_id, c.type, c.estimated_cost, c.approved_amount,
       c.deductible, c.status, c.incident_at, c.reviewed_at,
       c.reviewed_by_admin_id, c.paid_at, c.created_at
FROM claims c
JOIN bookings b ON b.id = c.booking_id
WHERE b.vehicle_id = $1
ORDER BY c.created_at DESC`

const queryListClaimPhotos = `
SELECT cp.id, cp.claim_id, cp.uploaded_at
FROM claim_photos cp
JOIN claims c ON c.id = cp.claim_id
JOIN bookings b ON b.id = c.booking_id
WHERE b.vehicle_id = $1
ORDER BY cp.uploaded_at ASC`

type claimStore struct {
	pool *pgxpool.Pool
}

func (s *claimStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Claim, error) {
	rows, err := s.pool.Query(ctx, queryListClaims, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := rows.Scan(
			&c.ID,
			&c.BookingID,
			&c.Type,
			&c.EstimatedCost,
			&c.ApprovedAmount,
			&c.Deductible,
			&c.Status,
			&c.IncidentAt,
			&c.ReviewedAt,
			&c.ReviewedByAdminID,
			&c.PaidAt,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

type claimPhotoStore struct {
	pool *pgxpool.Pool
}

func (s *claimPhotoStore) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.ClaimPhoto, error) {
	rows, err := s.pool.Query(ctx, queryListClaimPhotos, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ClaimPhoto
	for rows.Next() {
		var p model.ClaimPhoto
		if err := rows.Scan(&p.ID, &p.ClaimID, &p.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
