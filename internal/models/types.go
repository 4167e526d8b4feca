// internal/models/types.go
package models

import (
	"errors"
	"time"
)

// Role is the account type of a user. The set is closed: anything else is
// not a domain role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleHR     Role = "hr"
	RoleWorker Role = "worker"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleWorker:
		return true
	}
	return false
}

// Specialty is the trade category of a worker, and doubles as the job type.
type Specialty string

const (
	SpecialtyPlumbing   Specialty = "plumbing"
	SpecialtyElectrical Specialty = "electrical"
	SpecialtyDrilling   Specialty = "drilling"
	SpecialtyHVAC       Specialty = "hvac"
)

func (s Specialty) Valid() bool {
	switch s {
	case SpecialtyPlumbing, SpecialtyElectrical, SpecialtyDrilling, SpecialtyHVAC:
		return true
	}
	return false
}

// JobStatus is the lifecycle stage of a job.
// pending → assigned → in_progress → completed | cancelled.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobAssigned   JobStatus = "assigned"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobAssigned, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the job lifecycle.
func (s JobStatus) Terminal() bool { return s == JobCompleted || s == JobCancelled }

// WorkerStatus is the availability state of a worker.
type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerWorking   WorkerStatus = "working"
	WorkerOffline   WorkerStatus = "offline"
)

func (s WorkerStatus) Valid() bool {
	switch s {
	case WorkerAvailable, WorkerWorking, WorkerOffline:
		return true
	}
	return false
}

// Priority is the urgency tier of a job.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ReportStatus is the review state of a submitted job report.
type ReportStatus string

const (
	ReportSubmitted ReportStatus = "submitted"
	ReportApproved  ReportStatus = "approved"
	ReportRejected  ReportStatus = "rejected"
)

// LatLng is a geographic point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// JobLocation is a street address plus its geocoded point.
type JobLocation struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// User is an account. Workers additionally have a Worker row referencing
// the user by id.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Worker is a field worker profile. UserID references the owning account;
// the worker does not embed it.
type Worker struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"userId"`
	Specialty     Specialty    `json:"specialty"`
	Status        WorkerStatus `json:"status"`
	Location      LatLng       `json:"location"`
	CompletedJobs int          `json:"completedJobs"`
	Rating        string       `json:"rating"`
	IsActive      bool         `json:"isActive"`
}

// Job is a unit of field work. AssignedTo is nil exactly while the job is
// unassigned; handlers maintain that correlation, the struct itself does
// not enforce transitions.
type Job struct {
	ID                int64       `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Type              Specialty   `json:"type"`
	Priority          Priority    `json:"priority"`
	Status            JobStatus   `json:"status"`
	Location          JobLocation `json:"location"`
	AssignedTo        *int64      `json:"assignedTo"`
	CreatedBy         int64       `json:"createdBy"`
	CustomerName      string      `json:"customerName"`
	CustomerPhone     string      `json:"customerPhone"`
	EstimatedDuration float64     `json:"estimatedDuration"`
	ActualDuration    *float64    `json:"actualDuration"`
	ScheduledAt       *time.Time  `json:"scheduledAt"`
	StartedAt         *time.Time  `json:"startedAt"`
	CompletedAt       *time.Time  `json:"completedAt"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// Activity is a write-only audit record. Never mutated after insert.
type Activity struct {
	ID          int64          `json:"id"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	UserID      int64          `json:"userId"`
	EntityID    int64          `json:"entityId"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Activity type tags recorded by the handlers.
const (
	ActivityJobCreated      = "job_created"
	ActivityJobAssigned     = "job_assigned"
	ActivityJobStarted      = "job_started"
	ActivityJobCompleted    = "job_completed"
	ActivityJobCancelled    = "job_cancelled"
	ActivityClockedIn       = "worker_clocked_in"
	ActivityClockedOut      = "worker_clocked_out"
	ActivityReportSubmitted = "report_submitted"
	ActivityReportApproved  = "report_approved"
	ActivityReportRejected  = "report_rejected"
)

// JobReport is a worker's completion report for a job.
type JobReport struct {
	ID              int64        `json:"id"`
	JobID           int64        `json:"jobId"`
	WorkerID        int64        `json:"workerId"`
	Description     string       `json:"description"`
	TimeSpent       float64      `json:"timeSpent"`
	Status          ReportStatus `json:"status"`
	RejectionReason *string      `json:"rejectionReason,omitempty"`
	Photos          []string     `json:"photos"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// TimeEntry is one clock-in/clock-out span for a worker. ClockOutTime is
// nil while the entry is open.
type TimeEntry struct {
	ID           int64      `json:"id"`
	WorkerID     int64      `json:"workerId"`
	ClockInTime  time.Time  `json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty"`
	Location     LatLng     `json:"location"`
}

// DashboardMetrics is the headline counter set for the HR dashboard.
type DashboardMetrics struct {
	TotalHRs          int `json:"totalHRs"`
	TotalWorkers      int `json:"totalWorkers"`
	JobsAssigned      int `json:"jobsAssigned"`
	JobsPending       int `json:"jobsPending"`
	ActiveJobs        int `json:"activeJobs"`
	CompletedToday    int `json:"completedToday"`
	AvailableWorkers  int `json:"availableWorkers"`
	PendingAssignment int `json:"pendingAssignment"`
}

// JobCompletionChart is the month-by-month completion series.
type JobCompletionChart struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// LocalCredential is a username/password-hash pair for local login.
type LocalCredential struct {
	UserID       int64
	Username     string
	PasswordHash string
}

// Session is the server-side login state referenced by the opaque cookie.
type Session struct {
	UserID int64
	Role   Role
	Expiry time.Time
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
)
