package timeclock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

// clockStubRepo covers only what the clock handlers reach; a clocked-in
// flag drives the conflict paths.
type clockStubRepo struct {
	repo.Repo
	clockedIn bool
}

func (s *clockStubRepo) GetWorkerByUserID(_ context.Context, userID int64) (models.Worker, error) {
	if userID != 3 {
		return models.Worker{}, models.ErrWorkerNotFound
	}
	return models.Worker{ID: 1, UserID: 3, Status: models.WorkerOffline}, nil
}

func (s *clockStubRepo) ClockIn(_ context.Context, workerID int64, loc models.LatLng) (models.TimeEntry, error) {
	if s.clockedIn {
		return models.TimeEntry{}, models.ErrAlreadyClockedIn
	}
	s.clockedIn = true
	return models.TimeEntry{ID: 1, WorkerID: workerID, Location: loc}, nil
}

func (s *clockStubRepo) ClockOut(_ context.Context, workerID int64) (models.TimeEntry, error) {
	if !s.clockedIn {
		return models.TimeEntry{}, models.ErrNotClockedIn
	}
	s.clockedIn = false
	return models.TimeEntry{ID: 1, WorkerID: workerID}, nil
}

func (s *clockStubRepo) UpdateWorkerStatus(context.Context, int64, models.WorkerStatus) error {
	return nil
}

func (s *clockStubRepo) RecordActivity(context.Context, models.Activity) error { return nil }

func doClock(t *testing.T, h *Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	var fn http.HandlerFunc
	switch path {
	case "/api/time-tracking/clock-in":
		fn = h.ClockIn
	case "/api/time-tracking/clock-out":
		fn = h.ClockOut
	}
	req := httptest.NewRequest(method, path, strings.NewReader(`{"location":{"lat":40.7,"lng":-74.0}}`))
	req = req.WithContext(auth.WithSession(req.Context(), &models.Session{UserID: 3, Role: models.RoleWorker}))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestClockInTwiceConflicts(t *testing.T) {
	h := New(&clockStubRepo{})

	rec := doClock(t, h, http.MethodPost, "/api/time-tracking/clock-in")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doClock(t, h, http.MethodPost, "/api/time-tracking/clock-in")
	require.Equal(t, http.StatusConflict, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "already clocked in", body["message"])
}

func TestClockOutWithoutOpenEntryConflicts(t *testing.T) {
	h := New(&clockStubRepo{})

	rec := doClock(t, h, http.MethodPost, "/api/time-tracking/clock-out")
	require.Equal(t, http.StatusConflict, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not clocked in", body["message"])
}

func TestClockRoundTrip(t *testing.T) {
	h := New(&clockStubRepo{})

	rec := doClock(t, h, http.MethodPost, "/api/time-tracking/clock-in")
	require.Equal(t, http.StatusCreated, rec.Code)
	var entry models.TimeEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, int64(1), entry.WorkerID)
	assert.Equal(t, 40.7, entry.Location.Lat)

	rec = doClock(t, h, http.MethodPost, "/api/time-tracking/clock-out")
	assert.Equal(t, http.StatusOK, rec.Code)
}
