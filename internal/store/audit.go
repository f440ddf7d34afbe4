package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

const queryListAuditLogs = `
SELECT id, entity_type, entity_id, action, category, severity,
       admin_id, host_id, user_name, old_values, new_values, metadata, created_at
FROM audit_logs
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC`

type auditLogStore struct {
	pool *pgxpool.Pool
}

func (s *auditLogStore) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]model.AuditLog, error) {
	rows, err := s.pool.Query(ctx, queryListAuditLogs, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AuditLog
	for rows.Next() {
		var l model.AuditLog
		if err := rows.Scan(
			&l.ID,
			&l.EntityType,
			&l.EntityID,
			&l.Action,
			&l.Category,
			&l.Severity,
			&l.AdminID,
			&l.HostID,
			&l.UserName,
			&l.OldValues,
			&l.NewValues,
			&l.Metadata,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
