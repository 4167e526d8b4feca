package repo

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Rax2004/Workforcepro/internal/models"
)

// RecordActivity appends an audit record. Activities are write-only;
// there is no update path on purpose.
func (p *pgRepo) RecordActivity(ctx context.Context, a models.Activity) error {
	meta, err := json.Marshal(a.Metadata)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO activities (type, description, user_id, entity_id, metadata)
		VALUES ($1, $2, $3, $4, $5)`,
		a.Type, a.Description, a.UserID, a.EntityID, meta)
	if err != nil {
		slog.ErrorContext(ctx, "RecordActivity failed", "type", a.Type, "err", err)
	}
	return err
}

func (p *pgRepo) ListActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := p.pool.Query(ctx, `
		SELECT id, type, description, user_id, entity_id, metadata, created_at
		FROM activities ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Activity, 0, limit)
	for rows.Next() {
		var a models.Activity
		var meta []byte
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.UserID, &a.EntityID, &meta, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			_ = json.Unmarshal(meta, &a.Metadata)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
