package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/Rax2004/Workforcepro/internal/models"
)

const timeEntryColumns = `id, worker_id, clock_in, clock_out, lat, lng`

func scanTimeEntry(row pgx.Row) (models.TimeEntry, error) {
	var e models.TimeEntry
	err := row.Scan(&e.ID, &e.WorkerID, &e.ClockInTime, &e.ClockOutTime,
		&e.Location.Lat, &e.Location.Lng)
	return e, err
}

// ClockIn opens a time entry for the worker. At most one entry per worker
// is open at a time; a second clock-in while open is rejected.
func (p *pgRepo) ClockIn(ctx context.Context, workerID int64, loc models.LatLng) (models.TimeEntry, error) {
	slog.DebugContext(ctx, "ClockIn", "worker_id", workerID)
	if open, err := p.CurrentTimeEntry(ctx, workerID); err != nil {
		return models.TimeEntry{}, err
	} else if open != nil {
		return models.TimeEntry{}, models.ErrAlreadyClockedIn
	}
	return scanTimeEntry(p.pool.QueryRow(ctx, `
		INSERT INTO time_entries (worker_id, clock_in, lat, lng)
		VALUES ($1, now(), $2, $3)
		RETURNING `+timeEntryColumns, workerID, loc.Lat, loc.Lng))
}

// ClockOut closes the worker's open entry and returns it.
func (p *pgRepo) ClockOut(ctx context.Context, workerID int64) (models.TimeEntry, error) {
	slog.DebugContext(ctx, "ClockOut", "worker_id", workerID)
	e, err := scanTimeEntry(p.pool.QueryRow(ctx, `
		UPDATE time_entries SET clock_out = now()
		WHERE worker_id = $1 AND clock_out IS NULL
		RETURNING `+timeEntryColumns, workerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TimeEntry{}, models.ErrNotClockedIn
	}
	return e, err
}

// CurrentTimeEntry returns the worker's open entry, or nil when clocked
// out.
func (p *pgRepo) CurrentTimeEntry(ctx context.Context, workerID int64) (*models.TimeEntry, error) {
	e, err := scanTimeEntry(p.pool.QueryRow(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries
		 WHERE worker_id = $1 AND clock_out IS NULL`, workerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
