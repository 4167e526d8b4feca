// internal/handlers/timeclock/timeclock.go
package timeclock

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

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

// callerWorker resolves the worker profile for the authenticated user.
func (h *Handler) callerWorker(w http.ResponseWriter, r *http.Request) (models.Worker, bool) {
	uid, ok := httpctx.UserID(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return models.Worker{}, false
	}
	worker, err := h.repo.GetWorkerByUserID(r.Context(), uid)
	if err != nil {
		httpserver.Error(w, http.StatusForbidden, "no worker profile for this account")
		return models.Worker{}, false
	}
	return worker, true
}

type clockInRequest struct {
	Location models.LatLng `json:"location"`
}

// ClockIn opens a time entry and marks the worker available. Fails with
// 409 if an entry is already open.
func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	worker, ok := h.callerWorker(w, r)
	if !ok {
		return
	}

	defer r.Body.Close()
	var req clockInRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	entry, err := h.repo.ClockIn(r.Context(), worker.ID, req.Location)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyClockedIn) {
			httpserver.Error(w, http.StatusConflict, "already clocked in")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to clock in")
		httpserver.Error(w, status, msg)
		return
	}

	if worker.Status == models.WorkerOffline {
		if err := h.repo.UpdateWorkerStatus(r.Context(), worker.ID, models.WorkerAvailable); err != nil {
			slog.ErrorContext(r.Context(), "update worker status", "error", err, "worker_id", worker.ID)
		}
	}
	h.record(r, models.ActivityClockedIn, "Worker clocked in", worker.UserID, worker.ID)
	httpserver.JSON(w, http.StatusCreated, entry)
}

// ClockOut closes the open time entry and marks the worker offline.
func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	worker, ok := h.callerWorker(w, r)
	if !ok {
		return
	}

	entry, err := h.repo.ClockOut(r.Context(), worker.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotClockedIn) {
			httpserver.Error(w, http.StatusConflict, "not clocked in")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to clock out")
		httpserver.Error(w, status, msg)
		return
	}

	if err := h.repo.UpdateWorkerStatus(r.Context(), worker.ID, models.WorkerOffline); err != nil {
		slog.ErrorContext(r.Context(), "update worker status", "error", err, "worker_id", worker.ID)
	}
	h.record(r, models.ActivityClockedOut, "Worker clocked out", worker.UserID, worker.ID)
	httpserver.JSON(w, http.StatusOK, entry)
}

// Current returns the open time entry, or null when the worker is not
// clocked in.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	worker, ok := h.callerWorker(w, r)
	if !ok {
		return
	}
	entry, err := h.repo.CurrentTimeEntry(r.Context(), worker.ID)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to load time entry")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, entry)
}

func (h *Handler) record(r *http.Request, typ, desc string, userID, entityID int64) {
	a := models.Activity{Type: typ, Description: desc, UserID: userID, EntityID: entityID}
	if err := h.repo.RecordActivity(r.Context(), a); err != nil {
		slog.ErrorContext(r.Context(), "record activity", "error", err, "type", typ)
	}
}
