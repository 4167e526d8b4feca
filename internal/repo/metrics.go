package repo

import (
	"context"

	"github.com/Rax2004/Workforcepro/internal/models"
)

// DashboardMetrics computes the headline counters in one round trip.
func (p *pgRepo) DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	var m models.DashboardMetrics
	err := p.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users WHERE role = 'hr'),
			(SELECT count(*) FROM workers WHERE is_active),
			(SELECT count(*) FROM jobs WHERE status = 'assigned'),
			(SELECT count(*) FROM jobs WHERE status = 'pending'),
			(SELECT count(*) FROM jobs WHERE status = 'in_progress'),
			(SELECT count(*) FROM jobs WHERE status = 'completed'
				AND completed_at >= date_trunc('day', now())),
			(SELECT count(*) FROM workers WHERE is_active AND status = 'available')`).
		Scan(&m.TotalHRs, &m.TotalWorkers, &m.JobsAssigned, &m.JobsPending,
			&m.ActiveJobs, &m.CompletedToday, &m.AvailableWorkers)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	// Pending jobs are exactly the ones awaiting assignment.
	m.PendingAssignment = m.JobsPending
	return m, nil
}

// JobCompletionChart returns completed-job counts for the last N months,
// oldest first, with month-name labels.
func (p *pgRepo) JobCompletionChart(ctx context.Context, months int) (models.JobCompletionChart, error) {
	if months <= 0 {
		months = 6
	}
	rows, err := p.pool.Query(ctx, `
		WITH series AS (
			SELECT date_trunc('month', now()) - (interval '1 month' * g) AS month
			FROM generate_series($1::int - 1, 0, -1) AS g
		)
		SELECT to_char(series.month, 'Mon'), count(jobs.id)
		FROM series
		LEFT JOIN jobs ON jobs.status = 'completed'
			AND date_trunc('month', jobs.completed_at) = series.month
		GROUP BY series.month
		ORDER BY series.month`, months)
	if err != nil {
		return models.JobCompletionChart{}, err
	}
	defer rows.Close()

	chart := models.JobCompletionChart{
		Labels: make([]string, 0, months),
		Data:   make([]int, 0, months),
	}
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return models.JobCompletionChart{}, err
		}
		chart.Labels = append(chart.Labels, label)
		chart.Data = append(chart.Data, n)
	}
	return chart, rows.Err()
}
