// internal/repo/repo.go
package repo

import (
	"context"
	"net/netip"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rax2004/Workforcepro/internal/jobs"
	"github.com/Rax2004/Workforcepro/internal/models"
)

// Repo defines the persistence methods the rest of the app uses.
type Repo interface {
	// Users
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Local auth
	CreateLocalCredential(ctx context.Context, userID int64, username, phc string) error
	GetLocalCredentialByUsername(ctx context.Context, username string) (models.LocalCredential, models.User, error)
	UpdateLocalPasswordHash(ctx context.Context, userID int64, phc string) error
	RecordLoginSuccess(ctx context.Context, username string, ip netip.Addr) error
	RecordLoginFailure(ctx context.Context, username string, ip netip.Addr) error
	UserHasTOTP(ctx context.Context, userID int64) bool
	SetTOTPSecret(ctx context.Context, userID int64, secret string) error
	GetTOTPSecret(ctx context.Context, userID int64) (string, bool)

	// Workers
	ListWorkers(ctx context.Context) ([]models.Worker, error)
	GetWorkerByID(ctx context.Context, id int64) (models.Worker, error)
	GetWorkerByUserID(ctx context.Context, userID int64) (models.Worker, error)
	UpdateWorkerStatus(ctx context.Context, id int64, status models.WorkerStatus) error
	IncrementCompletedJobs(ctx context.Context, id int64) error

	// Jobs
	ListJobs(ctx context.Context, statuses []models.JobStatus) ([]models.Job, error)
	ListJobsByWorker(ctx context.Context, workerID int64) ([]models.Job, error)
	GetJobByID(ctx context.Context, id int64) (models.Job, error)
	CreateJob(ctx context.Context, req jobs.CreateJobRequest, createdBy int64) (models.Job, error)
	UpdateJob(ctx context.Context, id int64, patch JobPatch) (models.Job, error)

	// Activities (append-only)
	RecordActivity(ctx context.Context, a models.Activity) error
	ListActivities(ctx context.Context, limit int) ([]models.Activity, error)

	// Job reports
	CreateJobReport(ctx context.Context, r models.JobReport) (models.JobReport, error)
	ListJobReports(ctx context.Context) ([]models.JobReport, error)
	GetJobReportByID(ctx context.Context, id int64) (models.JobReport, error)
	UpdateJobReportStatus(ctx context.Context, id int64, status models.ReportStatus, rejectionReason *string) (models.JobReport, error)

	// Time tracking
	ClockIn(ctx context.Context, workerID int64, loc models.LatLng) (models.TimeEntry, error)
	ClockOut(ctx context.Context, workerID int64) (models.TimeEntry, error)
	CurrentTimeEntry(ctx context.Context, workerID int64) (*models.TimeEntry, error)

	// Dashboard
	DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error)
	JobCompletionChart(ctx context.Context, months int) (models.JobCompletionChart, error)
}

// JobPatch is a partial update for a job. Nil fields are left untouched;
// ClearAssigned forces assigned_to back to NULL (used on cancellation).
type JobPatch struct {
	Status         *models.JobStatus
	AssignedTo     *int64
	ClearAssigned  bool
	ActualDuration *float64
	ScheduledAt    *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
}

// pgRepo runs the queries against a pgx pool.
type pgRepo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Repo { return &pgRepo{pool: pool} }
