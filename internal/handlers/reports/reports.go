// internal/handlers/reports/reports.go
package reports

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Rax2004/Workforcepro/internal/auth"
	httpserver "github.com/Rax2004/Workforcepro/internal/http"
	"github.com/Rax2004/Workforcepro/internal/httpctx"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(r repo.Repo) *Handler {
	return &Handler{repo: r}
}

type createRequest struct {
	JobID       int64    `json:"jobId"`
	Description string   `json:"description"`
	TimeSpent   float64  `json:"timeSpent"`
	Photos      []string `json:"photos"`
}

// Create submits a completion report. Only the worker the job is assigned
// to may report on it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := httpctx.UserID(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	worker, err := h.repo.GetWorkerByUserID(r.Context(), uid)
	if err != nil {
		httpserver.Error(w, http.StatusForbidden, "no worker profile for this account")
		return
	}

	defer r.Body.Close()
	var req createRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.JobID <= 0 || strings.TrimSpace(req.Description) == "" {
		httpserver.Error(w, http.StatusBadRequest, "jobId and description are required")
		return
	}

	job, err := h.repo.GetJobByID(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			httpserver.Error(w, http.StatusNotFound, "job not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to load job")
		httpserver.Error(w, status, msg)
		return
	}
	if job.AssignedTo == nil || *job.AssignedTo != worker.ID {
		httpserver.Error(w, http.StatusForbidden, "job is not assigned to you")
		return
	}

	report, err := h.repo.CreateJobReport(r.Context(), models.JobReport{
		JobID:       req.JobID,
		WorkerID:    worker.ID,
		Description: req.Description,
		TimeSpent:   req.TimeSpent,
		Photos:      req.Photos,
		Status:      models.ReportSubmitted,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create report")
		httpserver.Error(w, status, msg)
		return
	}

	h.record(r, models.ActivityReportSubmitted, "Report submitted for: "+job.Title, uid, report.ID)
	httpserver.JSON(w, http.StatusCreated, report)
}

// List returns job reports. Admin and HR see all of them; a worker only
// sees their own.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := httpctx.User(r.Context())
	if !ok || user == nil {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	list, err := h.repo.ListJobReports(r.Context())
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list reports")
		httpserver.Error(w, status, msg)
		return
	}
	if auth.IsWorker(user) {
		worker, err := h.repo.GetWorkerByUserID(r.Context(), user.ID)
		if err != nil {
			httpserver.Error(w, http.StatusForbidden, "no worker profile for this account")
			return
		}
		own := make([]models.JobReport, 0, len(list))
		for _, rep := range list {
			if rep.WorkerID == worker.ID {
				own = append(own, rep)
			}
		}
		list = own
	}
	httpserver.JSON(w, http.StatusOK, list)
}

type reviewRequest struct {
	Status          models.ReportStatus `json:"status"`
	RejectionReason *string             `json:"rejectionReason"`
}

// Review approves or rejects a submitted report. Rejection requires a
// reason. Requires the admin or hr role (enforced at the route).
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	uid, _ := httpctx.UserID(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpserver.Error(w, http.StatusBadRequest, "invalid report id")
		return
	}

	defer r.Body.Close()
	var req reviewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Status != models.ReportApproved && req.Status != models.ReportRejected {
		httpserver.Error(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}
	if req.Status == models.ReportRejected && (req.RejectionReason == nil || strings.TrimSpace(*req.RejectionReason) == "") {
		httpserver.Error(w, http.StatusBadRequest, "a rejection reason is required")
		return
	}
	if req.Status == models.ReportApproved {
		req.RejectionReason = nil
	}

	report, err := h.repo.UpdateJobReportStatus(r.Context(), id, req.Status, req.RejectionReason)
	if err != nil {
		if errors.Is(err, models.ErrReportNotFound) {
			httpserver.Error(w, http.StatusNotFound, "report not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to update report")
		httpserver.Error(w, status, msg)
		return
	}

	activity := models.ActivityReportApproved
	desc := "Report approved"
	if req.Status == models.ReportRejected {
		activity = models.ActivityReportRejected
		desc = "Report rejected"
	}
	h.record(r, activity, desc, uid, report.ID)
	httpserver.JSON(w, http.StatusOK, report)
}

func (h *Handler) record(r *http.Request, typ, desc string, userID, entityID int64) {
	a := models.Activity{Type: typ, Description: desc, UserID: userID, EntityID: entityID}
	if err := h.repo.RecordActivity(r.Context(), a); err != nil {
		slog.ErrorContext(r.Context(), "record activity", "error", err, "type", typ)
	}
}
