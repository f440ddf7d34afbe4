package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListAdminsByIDs = `
SELECT id, name
FROM admins
WHERE id = ANY($1)`

const queryListHostsByIDs = `
SELECT id, name, insurance_provider, revenue_split
FROM hosts
WHERE id = ANY($1)`

type adminStore struct {
	pool *pgxpool.Pool
}

func (s *adminStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Admin, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, queryListAdminsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

type hostStore struct {
	pool *pgxpool.Pool
}

func (s *hostStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Host, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, queryListHostsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Host
	for rows.Next() {
		var h model.Host
		if err := rows.Scan(&h.ID, &h.Name, &h.InsuranceProvider, &h.RevenueSplit); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
