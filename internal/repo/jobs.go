package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	jobsmodel "github.com/Rax2004/Workforcepro/internal/jobs"
	"github.com/Rax2004/Workforcepro/internal/models"
)

const jobColumns = `id, title, description, type, priority, status,
	address, lat, lng, assigned_to, created_by, customer_name, customer_phone,
	estimated_duration, actual_duration, scheduled_at, started_at, completed_at, created_at`

func scanJob(row pgx.Row) (models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Type, &j.Priority, &j.Status,
		&j.Location.Address, &j.Location.Lat, &j.Location.Lng,
		&j.AssignedTo, &j.CreatedBy, &j.CustomerName, &j.CustomerPhone,
		&j.EstimatedDuration, &j.ActualDuration,
		&j.ScheduledAt, &j.StartedAt, &j.CompletedAt, &j.CreatedAt)
	return j, err
}

// ListJobs returns jobs, optionally restricted to a set of statuses
// (the dashboard asks for "assigned,in_progress" in one call).
func (p *pgRepo) ListJobs(ctx context.Context, statuses []models.JobStatus) ([]models.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{}
	if len(statuses) > 0 {
		q += ` WHERE status = ANY($1)`
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = string(s)
		}
		args = append(args, ss)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (p *pgRepo) ListJobsByWorker(ctx context.Context, workerID int64) ([]models.Job, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE assigned_to = $1 ORDER BY created_at DESC`,
		workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (p *pgRepo) GetJobByID(ctx context.Context, id int64) (models.Job, error) {
	j, err := scanJob(p.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	return j, err
}

// CreateJob inserts a job from the validated creation payload. Status
// starts pending unless a worker was preselected, in which case the job
// is born assigned.
func (p *pgRepo) CreateJob(ctx context.Context, req jobsmodel.CreateJobRequest, createdBy int64) (models.Job, error) {
	slog.DebugContext(ctx, "CreateJob", "title", req.Title, "type", req.Type)
	status := models.JobPending
	if req.AssignedTo != nil {
		status = models.JobAssigned
	}
	j, err := scanJob(p.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, description, type, priority, status,
			address, lat, lng, assigned_to, created_by,
			customer_name, customer_phone, estimated_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+jobColumns, req.Title, req.Description, req.Type, req.Priority, status,
		req.Location.Address, req.Location.Lat, req.Location.Lng,
		req.AssignedTo, createdBy, req.CustomerName, req.CustomerPhone,
		req.EstimatedDuration))
	if err != nil {
		slog.ErrorContext(ctx, "CreateJob failed", "err", err)
		return models.Job{}, err
	}
	return j, nil
}

// UpdateJob applies a partial update and returns the new row.
func (p *pgRepo) UpdateJob(ctx context.Context, id int64, patch JobPatch) (models.Job, error) {
	sets := make([]string, 0, 6)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ClearAssigned {
		sets = append(sets, "assigned_to = NULL")
	} else if patch.AssignedTo != nil {
		add("assigned_to", *patch.AssignedTo)
	}
	if patch.ActualDuration != nil {
		add("actual_duration", *patch.ActualDuration)
	}
	if patch.ScheduledAt != nil {
		add("scheduled_at", *patch.ScheduledAt)
	}
	if patch.StartedAt != nil {
		add("started_at", *patch.StartedAt)
	}
	if patch.CompletedAt != nil {
		add("completed_at", *patch.CompletedAt)
	}
	if len(sets) == 0 {
		return p.GetJobByID(ctx, id)
	}

	q := `UPDATE jobs SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + jobColumns
	j, err := scanJob(p.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "UpdateJob failed", "job_id", id, "err", err)
		return models.Job{}, err
	}
	return j, nil
}
