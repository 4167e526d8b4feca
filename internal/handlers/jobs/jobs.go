// internal/handlers/jobs/jobs.go
package jobs

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/geocode"
	httpserver "github.com/Rax2004/Workforcepro/internal/http"
	"github.com/Rax2004/Workforcepro/internal/httpctx"
	jobmodel "github.com/Rax2004/Workforcepro/internal/jobs"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

type Handler struct {
	repo     repo.Repo
	geocoder geocode.Geocoder
}

func New(r repo.Repo, g geocode.Geocoder) *Handler {
	return &Handler{repo: r, geocoder: g}
}

// List returns jobs, optionally filtered by ?status=pending,assigned.
// Unknown status values are ignored rather than rejected.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var statuses []models.JobStatus
	if q := strings.TrimSpace(r.URL.Query().Get("status")); q != "" {
		for _, part := range strings.Split(q, ",") {
			s := models.JobStatus(strings.TrimSpace(part))
			if s.Valid() {
				statuses = append(statuses, s)
			}
		}
	}

	list, err := h.repo.ListJobs(r.Context(), statuses)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list jobs")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, list)
}

// My returns the jobs assigned to the calling worker.
func (h *Handler) My(w http.ResponseWriter, r *http.Request) {
	uid, ok := httpctx.UserID(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	worker, err := h.repo.GetWorkerByUserID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, models.ErrWorkerNotFound) {
			httpserver.Error(w, http.StatusForbidden, "no worker profile for this account")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to load worker profile")
		httpserver.Error(w, status, msg)
		return
	}
	list, err := h.repo.ListJobsByWorker(r.Context(), worker.ID)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list jobs")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, list)
}

// Create inserts a new job. Requires the admin or hr role (enforced at
// the route). Title, type and address are required; missing coordinates
// are filled in by the geocoder.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := httpctx.UserID(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	defer r.Body.Close()
	var req jobmodel.CreateJobRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	if err := dec.Decode(&req); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Location.Address) == "" || !req.Type.Valid() {
		httpserver.Error(w, http.StatusBadRequest, jobmodel.ErrMissingFields.Message)
		return
	}
	if !req.Priority.Valid() {
		req.Priority = models.PriorityNormal
	}
	if req.EstimatedDuration <= 0 {
		req.EstimatedDuration = jobmodel.DefaultEstimatedDuration
	}
	if req.Location.Lat == 0 && req.Location.Lng == 0 {
		coords, err := h.geocoder.Geocode(r.Context(), req.Location.Address)
		if err != nil {
			httpserver.Error(w, http.StatusBadRequest, "could not geocode address")
			return
		}
		req.Location.Lat = coords.Lat
		req.Location.Lng = coords.Lng
	}
	if req.AssignedTo != nil {
		if _, err := h.repo.GetWorkerByID(r.Context(), *req.AssignedTo); err != nil {
			httpserver.Error(w, http.StatusBadRequest, "assigned worker not found")
			return
		}
	}

	job, err := h.repo.CreateJob(r.Context(), req, uid)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create job")
		httpserver.Error(w, status, msg)
		return
	}

	h.record(r, models.ActivityJobCreated, "Job created: "+job.Title, uid, job.ID, nil)
	if job.AssignedTo != nil {
		h.record(r, models.ActivityJobAssigned, "Job assigned: "+job.Title, uid, job.ID,
			map[string]any{"workerId": *job.AssignedTo})
	}
	httpserver.JSON(w, http.StatusCreated, job)
}

// patchRequest is the partial update body for PATCH /api/jobs/{id}.
type patchRequest struct {
	Status         *models.JobStatus `json:"status"`
	AssignedTo     *int64            `json:"assignedTo"`
	ActualDuration *float64          `json:"actualDuration"`
	ScheduledAt    *time.Time        `json:"scheduledAt"`
}

// Patch applies a partial update and keeps the bookkeeping straight:
// assignment sets assignedTo with status assigned, starting stamps
// startedAt and marks the worker working, completing stamps completedAt,
// bumps the worker's completed count and frees them, cancelling clears
// the assignment.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	user, ok := httpctx.User(r.Context())
	if !ok || user == nil {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpserver.Error(w, http.StatusBadRequest, "invalid job id")
		return
	}

	defer r.Body.Close()
	var req patchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		httpserver.Error(w, http.StatusBadRequest, "invalid status")
		return
	}

	job, err := h.repo.GetJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			httpserver.Error(w, http.StatusNotFound, "job not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to load job")
		httpserver.Error(w, status, msg)
		return
	}
	if job.Status.Terminal() && req.Status != nil {
		httpserver.Error(w, http.StatusConflict, "job is already "+string(job.Status))
		return
	}

	patch := repo.JobPatch{
		Status:         req.Status,
		ActualDuration: req.ActualDuration,
		ScheduledAt:    req.ScheduledAt,
	}
	now := time.Now().UTC()
	activity := ""
	var activityMeta map[string]any

	if req.AssignedTo != nil {
		if !auth.CanAssignJobs(user) {
			httpserver.Error(w, http.StatusForbidden, "forbidden")
			return
		}
		if _, err := h.repo.GetWorkerByID(r.Context(), *req.AssignedTo); err != nil {
			httpserver.Error(w, http.StatusBadRequest, "assigned worker not found")
			return
		}
		patch.AssignedTo = req.AssignedTo
		activityMeta = map[string]any{"workerId": *req.AssignedTo}
	}

	if req.Status != nil {
		switch *req.Status {
		case models.JobAssigned:
			if patch.AssignedTo == nil && job.AssignedTo == nil {
				httpserver.Error(w, http.StatusBadRequest, jobmodel.ErrNoWorkerSelected.Message)
				return
			}
			activity = models.ActivityJobAssigned
		case models.JobInProgress:
			if job.AssignedTo == nil && patch.AssignedTo == nil {
				httpserver.Error(w, http.StatusConflict, "job has no assigned worker")
				return
			}
			patch.StartedAt = &now
			activity = models.ActivityJobStarted
		case models.JobCompleted:
			patch.CompletedAt = &now
			if patch.ActualDuration == nil && job.StartedAt != nil {
				d := now.Sub(*job.StartedAt).Hours()
				patch.ActualDuration = &d
			}
			activity = models.ActivityJobCompleted
		case models.JobCancelled:
			patch.ClearAssigned = true
			activity = models.ActivityJobCancelled
		case models.JobPending:
			patch.ClearAssigned = true
		}
	}

	updated, err := h.repo.UpdateJob(r.Context(), id, patch)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to update job")
		httpserver.Error(w, status, msg)
		return
	}

	// Worker status bookkeeping follows the job transition.
	if req.Status != nil {
		switch *req.Status {
		case models.JobInProgress:
			if updated.AssignedTo != nil {
				h.setWorkerStatus(r, *updated.AssignedTo, models.WorkerWorking)
			}
		case models.JobCompleted:
			if wid := workerOf(job, updated); wid != 0 {
				if err := h.repo.IncrementCompletedJobs(r.Context(), wid); err != nil {
					slog.ErrorContext(r.Context(), "increment completed jobs", "error", err, "worker_id", wid)
				}
				h.setWorkerStatus(r, wid, models.WorkerAvailable)
			}
		case models.JobCancelled:
			if job.Status == models.JobInProgress && job.AssignedTo != nil {
				h.setWorkerStatus(r, *job.AssignedTo, models.WorkerAvailable)
			}
		}
	}

	if activity != "" {
		h.record(r, activity, activityDescription(activity, updated), user.ID, updated.ID, activityMeta)
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

// workerOf picks the worker a completion should be credited to, preferring
// the pre-patch assignment.
func workerOf(before, after models.Job) int64 {
	if before.AssignedTo != nil {
		return *before.AssignedTo
	}
	if after.AssignedTo != nil {
		return *after.AssignedTo
	}
	return 0
}

func activityDescription(activity string, job models.Job) string {
	switch activity {
	case models.ActivityJobAssigned:
		return "Job assigned: " + job.Title
	case models.ActivityJobStarted:
		return "Job started: " + job.Title
	case models.ActivityJobCompleted:
		return "Job completed: " + job.Title
	case models.ActivityJobCancelled:
		return "Job cancelled: " + job.Title
	}
	return job.Title
}

func (h *Handler) setWorkerStatus(r *http.Request, workerID int64, status models.WorkerStatus) {
	if err := h.repo.UpdateWorkerStatus(r.Context(), workerID, status); err != nil {
		slog.ErrorContext(r.Context(), "update worker status", "error", err, "worker_id", workerID)
	}
}

// record appends an activity; failures are logged, never surfaced, so the
// mutation that triggered them still succeeds.
func (h *Handler) record(r *http.Request, typ, desc string, userID, entityID int64, meta map[string]any) {
	a := models.Activity{
		Type:        typ,
		Description: desc,
		UserID:      userID,
		EntityID:    entityID,
		Metadata:    meta,
	}
	if err := h.repo.RecordActivity(r.Context(), a); err != nil {
		slog.ErrorContext(r.Context(), "record activity", "error", err, "type", typ)
	}
}
