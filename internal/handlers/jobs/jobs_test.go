package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/fixtures"
	"github.com/Rax2004/Workforcepro/internal/geocode"
	jobmodel "github.com/Rax2004/Workforcepro/internal/jobs"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

// fakeRepo keeps everything in memory, seeded from the fixtures.
type fakeRepo struct {
	users      []models.User
	workers    []models.Worker
	jobs       []models.Job
	activities []models.Activity
	nextJobID  int64
}

func newFakeRepo() *fakeRepo {
	jobs := fixtures.Jobs()
	var maxID int64
	for _, j := range jobs {
		if j.ID > maxID {
			maxID = j.ID
		}
	}
	return &fakeRepo{
		users:     fixtures.Users(),
		workers:   fixtures.Workers(),
		jobs:      jobs,
		nextJobID: maxID + 1,
	}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int64) (models.User, error) {
	if u := models.UserByID(f.users, id); u != nil {
		return *u, nil
	}
	return models.User{}, models.ErrUserNotFound
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (f *fakeRepo) ListUsers(context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeRepo) CreateLocalCredential(context.Context, int64, string, string) error { return nil }
func (f *fakeRepo) GetLocalCredentialByUsername(context.Context, string) (models.LocalCredential, models.User, error) {
	return models.LocalCredential{}, models.User{}, models.ErrUserNotFound
}
func (f *fakeRepo) UpdateLocalPasswordHash(context.Context, int64, string) error    { return nil }
func (f *fakeRepo) RecordLoginSuccess(context.Context, string, netip.Addr) error    { return nil }
func (f *fakeRepo) RecordLoginFailure(context.Context, string, netip.Addr) error    { return nil }
func (f *fakeRepo) UserHasTOTP(context.Context, int64) bool                         { return false }
func (f *fakeRepo) SetTOTPSecret(context.Context, int64, string) error              { return nil }
func (f *fakeRepo) GetTOTPSecret(context.Context, int64) (string, bool)             { return "", false }

func (f *fakeRepo) ListWorkers(context.Context) ([]models.Worker, error) { return f.workers, nil }

func (f *fakeRepo) GetWorkerByID(_ context.Context, id int64) (models.Worker, error) {
	if w := models.WorkerByID(f.workers, id); w != nil {
		return *w, nil
	}
	return models.Worker{}, models.ErrWorkerNotFound
}

func (f *fakeRepo) GetWorkerByUserID(_ context.Context, userID int64) (models.Worker, error) {
	for _, w := range f.workers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return models.Worker{}, models.ErrWorkerNotFound
}

func (f *fakeRepo) UpdateWorkerStatus(_ context.Context, id int64, status models.WorkerStatus) error {
	for i := range f.workers {
		if f.workers[i].ID == id {
			f.workers[i].Status = status
			return nil
		}
	}
	return models.ErrWorkerNotFound
}

func (f *fakeRepo) IncrementCompletedJobs(_ context.Context, id int64) error {
	for i := range f.workers {
		if f.workers[i].ID == id {
			f.workers[i].CompletedJobs++
			return nil
		}
	}
	return models.ErrWorkerNotFound
}

func (f *fakeRepo) ListJobs(_ context.Context, statuses []models.JobStatus) ([]models.Job, error) {
	if len(statuses) == 0 {
		return f.jobs, nil
	}
	out := make([]models.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		for _, s := range statuses {
			if j.Status == s {
				out = append(out, j)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListJobsByWorker(_ context.Context, workerID int64) ([]models.Job, error) {
	out := make([]models.Job, 0)
	for _, j := range f.jobs {
		if j.AssignedTo != nil && *j.AssignedTo == workerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetJobByID(_ context.Context, id int64) (models.Job, error) {
	if j := models.JobByID(f.jobs, id); j != nil {
		return *j, nil
	}
	return models.Job{}, models.ErrJobNotFound
}

func (f *fakeRepo) CreateJob(_ context.Context, req jobmodel.CreateJobRequest, createdBy int64) (models.Job, error) {
	status := models.JobPending
	if req.AssignedTo != nil {
		status = models.JobAssigned
	}
	j := models.Job{
		ID:                f.nextJobID,
		Title:             req.Title,
		Description:       req.Description,
		Type:              req.Type,
		Priority:          req.Priority,
		Status:            status,
		Location:          req.Location,
		AssignedTo:        req.AssignedTo,
		CreatedBy:         createdBy,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		EstimatedDuration: req.EstimatedDuration,
		CreatedAt:         time.Now(),
	}
	f.nextJobID++
	f.jobs = append(f.jobs, j)
	return j, nil
}

func (f *fakeRepo) UpdateJob(_ context.Context, id int64, patch repo.JobPatch) (models.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID != id {
			continue
		}
		j := &f.jobs[i]
		if patch.Status != nil {
			j.Status = *patch.Status
		}
		if patch.AssignedTo != nil {
			j.AssignedTo = patch.AssignedTo
		}
		if patch.ClearAssigned {
			j.AssignedTo = nil
		}
		if patch.ActualDuration != nil {
			j.ActualDuration = patch.ActualDuration
		}
		if patch.ScheduledAt != nil {
			j.ScheduledAt = patch.ScheduledAt
		}
		if patch.StartedAt != nil {
			j.StartedAt = patch.StartedAt
		}
		if patch.CompletedAt != nil {
			j.CompletedAt = patch.CompletedAt
		}
		return *j, nil
	}
	return models.Job{}, models.ErrJobNotFound
}

func (f *fakeRepo) RecordActivity(_ context.Context, a models.Activity) error {
	a.ID = int64(len(f.activities) + 1)
	f.activities = append(f.activities, a)
	return nil
}

func (f *fakeRepo) ListActivities(_ context.Context, _ int) ([]models.Activity, error) {
	return f.activities, nil
}

func (f *fakeRepo) CreateJobReport(_ context.Context, r models.JobReport) (models.JobReport, error) {
	return r, nil
}
func (f *fakeRepo) ListJobReports(context.Context) ([]models.JobReport, error) { return nil, nil }
func (f *fakeRepo) GetJobReportByID(context.Context, int64) (models.JobReport, error) {
	return models.JobReport{}, models.ErrReportNotFound
}
func (f *fakeRepo) UpdateJobReportStatus(context.Context, int64, models.ReportStatus, *string) (models.JobReport, error) {
	return models.JobReport{}, models.ErrReportNotFound
}

func (f *fakeRepo) ClockIn(context.Context, int64, models.LatLng) (models.TimeEntry, error) {
	return models.TimeEntry{}, nil
}
func (f *fakeRepo) ClockOut(context.Context, int64) (models.TimeEntry, error) {
	return models.TimeEntry{}, nil
}
func (f *fakeRepo) CurrentTimeEntry(context.Context, int64) (*models.TimeEntry, error) {
	return nil, nil
}

func (f *fakeRepo) DashboardMetrics(context.Context) (models.DashboardMetrics, error) {
	return models.DashboardMetrics{}, nil
}
func (f *fakeRepo) JobCompletionChart(context.Context, int) (models.JobCompletionChart, error) {
	return models.JobCompletionChart{}, nil
}

// newTestRouter mounts the handler the way the real router does, with the
// given user pre-authenticated.
func newTestRouter(f *fakeRepo, user *models.User) http.Handler {
	h := New(f, geocode.NewStatic(40.7128, -74.0060))
	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithUser(r.Context(), user)
			ctx = auth.WithSession(ctx, &models.Session{UserID: user.ID, Role: user.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	mux.Get("/api/jobs", h.List)
	mux.Get("/api/jobs/my", h.My)
	mux.Post("/api/jobs", h.Create)
	mux.Patch("/api/jobs/{id}", h.Patch)
	return mux
}

func hrUser() *models.User     { return &models.User{ID: 2, Username: "hr.manager", Role: models.RoleHR} }
func workerUser() *models.User { return &models.User{ID: 3, Username: "john.doe", Role: models.RoleWorker} }

func doJSON(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListFiltersByStatus(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())

	rec := doJSON(t, mux, http.MethodGet, "/api/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 4)

	rec = doJSON(t, mux, http.MethodGet, "/api/jobs?status=pending,bogus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 2)
	for _, j := range pending {
		assert.Equal(t, models.JobPending, j.Status)
	}
}

func TestMyReturnsCallerAssignments(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), workerUser())

	rec := doJSON(t, mux, http.MethodGet, "/api/jobs/my", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].ID)
}

func TestMyWithoutWorkerProfile(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())
	rec := doJSON(t, mux, http.MethodGet, "/api/jobs/my", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())

	rec := doJSON(t, mux, http.MethodPost, "/api/jobs", map[string]any{"title": "Test Job"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Please fill in all required fields", body["message"])
}

func TestCreateAppliesDefaultsAndGeocodes(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, hrUser())

	rec := doJSON(t, mux, http.MethodPost, "/api/jobs", map[string]any{
		"title":    "Test Job",
		"type":     "plumbing",
		"location": map[string]any{"address": "123 Test St"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobPending, job.Status)
	assert.Nil(t, job.AssignedTo)
	assert.Equal(t, models.PriorityNormal, job.Priority)
	assert.Equal(t, float64(2), job.EstimatedDuration)
	assert.Equal(t, 40.7128, job.Location.Lat)
	assert.Equal(t, -74.0060, job.Location.Lng)
	assert.Equal(t, int64(2), job.CreatedBy)

	require.Len(t, f.activities, 1)
	assert.Equal(t, models.ActivityJobCreated, f.activities[0].Type)
}

func TestCreateWithWorkerStartsAssigned(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, hrUser())

	rec := doJSON(t, mux, http.MethodPost, "/api/jobs", map[string]any{
		"title":      "Test Job",
		"type":       "hvac",
		"location":   map[string]any{"address": "9 Elm St", "lat": 40.75, "lng": -73.99},
		"assignedTo": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobAssigned, job.Status)
	require.NotNil(t, job.AssignedTo)
	assert.Equal(t, int64(3), *job.AssignedTo)

	require.Len(t, f.activities, 2)
	assert.Equal(t, models.ActivityJobAssigned, f.activities[1].Type)
}

func TestCreateRejectsUnknownWorker(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())
	rec := doJSON(t, mux, http.MethodPost, "/api/jobs", map[string]any{
		"title":      "Test Job",
		"type":       "hvac",
		"location":   map[string]any{"address": "9 Elm St", "lat": 1, "lng": 1},
		"assignedTo": 999,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchAssignsWorker(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, hrUser())

	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/3", map[string]any{
		"assignedTo": 3,
		"status":     "assigned",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobAssigned, job.Status)
	require.NotNil(t, job.AssignedTo)
	assert.Equal(t, int64(3), *job.AssignedTo)
}

func TestPatchAssignmentForbiddenForWorkers(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), workerUser())
	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/3", map[string]any{
		"assignedTo": 1,
		"status":     "assigned",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPatchAssignWithoutWorkerFails(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())
	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/3", map[string]any{"status": "assigned"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Please select a worker", body["message"])
}

func TestPatchStartMarksWorkerWorking(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, workerUser())

	// Job 1 is assigned to worker 1 (john.doe).
	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/1", map[string]any{"status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobInProgress, job.Status)
	assert.NotNil(t, job.StartedAt)

	w, err := f.GetWorkerByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.WorkerWorking, w.Status)
}

func TestPatchCompleteCreditsWorker(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, workerUser())

	// Job 2 is in progress, assigned to worker 2.
	before, err := f.GetWorkerByID(context.Background(), 2)
	require.NoError(t, err)

	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/2", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobCompleted, job.Status)
	assert.NotNil(t, job.CompletedAt)
	assert.NotNil(t, job.ActualDuration)

	after, err := f.GetWorkerByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, before.CompletedJobs+1, after.CompletedJobs)
	assert.Equal(t, models.WorkerAvailable, after.Status)
}

func TestPatchCancelClearsAssignment(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, hrUser())

	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/1", map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.JobCancelled, job.Status)
	assert.Nil(t, job.AssignedTo)
}

func TestPatchTerminalJobConflicts(t *testing.T) {
	f := newFakeRepo()
	mux := newTestRouter(f, hrUser())

	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/2", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodPatch, "/api/jobs/2", map[string]any{"status": "in_progress"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPatchUnknownJob(t *testing.T) {
	mux := newTestRouter(newFakeRepo(), hrUser())
	rec := doJSON(t, mux, http.MethodPatch, "/api/jobs/999", map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, mux, http.MethodPatch, "/api/jobs/abc", map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
