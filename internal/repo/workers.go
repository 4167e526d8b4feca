package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/Rax2004/Workforcepro/internal/models"
)

const workerColumns = `id, user_id, specialty, status, lat, lng, completed_jobs, rating, is_active`

func scanWorker(row pgx.Row) (models.Worker, error) {
	var w models.Worker
	err := row.Scan(&w.ID, &w.UserID, &w.Specialty, &w.Status,
		&w.Location.Lat, &w.Location.Lng, &w.CompletedJobs, &w.Rating, &w.IsActive)
	return w, err
}

func (p *pgRepo) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (p *pgRepo) GetWorkerByID(ctx context.Context, id int64) (models.Worker, error) {
	w, err := scanWorker(p.pool.QueryRow(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Worker{}, models.ErrWorkerNotFound
	}
	return w, err
}

func (p *pgRepo) GetWorkerByUserID(ctx context.Context, userID int64) (models.Worker, error) {
	w, err := scanWorker(p.pool.QueryRow(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Worker{}, models.ErrWorkerNotFound
	}
	return w, err
}

func (p *pgRepo) UpdateWorkerStatus(ctx context.Context, id int64, status models.WorkerStatus) error {
	slog.DebugContext(ctx, "UpdateWorkerStatus", "worker_id", id, "status", status)
	tag, err := p.pool.Exec(ctx,
		`UPDATE workers SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrWorkerNotFound
	}
	return nil
}

func (p *pgRepo) IncrementCompletedJobs(ctx context.Context, id int64) error {
	_, err := p.pool.Exec(ctx,
		`UPDATE workers SET completed_jobs = completed_jobs + 1 WHERE id = $1`, id)
	return err
}
