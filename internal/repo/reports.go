package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Rax2004/Workforcepro/internal/models"
)

const reportColumns = `id, job_id, worker_id, description, time_spent, status, rejection_reason, photos, created_at`

func scanReport(row pgx.Row) (models.JobReport, error) {
	var r models.JobReport
	var reason pgtype.Text
	var photos []byte
	err := row.Scan(&r.ID, &r.JobID, &r.WorkerID, &r.Description, &r.TimeSpent,
		&r.Status, &reason, &photos, &r.CreatedAt)
	if err != nil {
		return models.JobReport{}, err
	}
	r.RejectionReason = fromNullText(reason)
	r.Photos = []string{}
	if len(photos) > 0 {
		_ = json.Unmarshal(photos, &r.Photos)
	}
	return r, nil
}

func (p *pgRepo) CreateJobReport(ctx context.Context, r models.JobReport) (models.JobReport, error) {
	slog.DebugContext(ctx, "CreateJobReport", "job_id", r.JobID, "worker_id", r.WorkerID)
	photos, err := json.Marshal(r.Photos)
	if err != nil {
		return models.JobReport{}, err
	}
	status := r.Status
	if status == "" {
		status = models.ReportSubmitted
	}
	return scanReport(p.pool.QueryRow(ctx, `
		INSERT INTO job_reports (job_id, worker_id, description, time_spent, status, photos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reportColumns,
		r.JobID, r.WorkerID, r.Description, r.TimeSpent, status, photos))
}

func (p *pgRepo) ListJobReports(ctx context.Context) ([]models.JobReport, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+reportColumns+` FROM job_reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.JobReport, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *pgRepo) GetJobReportByID(ctx context.Context, id int64) (models.JobReport, error) {
	r, err := scanReport(p.pool.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM job_reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.JobReport{}, models.ErrReportNotFound
	}
	return r, err
}

func (p *pgRepo) UpdateJobReportStatus(ctx context.Context, id int64, status models.ReportStatus, rejectionReason *string) (models.JobReport, error) {
	r, err := scanReport(p.pool.QueryRow(ctx, `
		UPDATE job_reports SET status = $2, rejection_reason = $3
		WHERE id = $1
		RETURNING `+reportColumns, id, status, toNullText(rejectionReason)))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.JobReport{}, models.ErrReportNotFound
	}
	return r, err
}
