// internal/handlers/dashboard/dashboard.go
package dashboard

import (
	"net/http"
	"strconv"

	httpserver "github.com/Rax2004/Workforcepro/internal/http"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(r repo.Repo) *Handler {
	return &Handler{repo: r}
}

// Metrics returns the headline counters for the HR dashboard.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.DashboardMetrics(r.Context())
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to load metrics")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, m)
}

// JobCompletionChart returns the month-by-month completed-job series.
// ?months controls the window, default 6, capped at 24.
func (h *Handler) JobCompletionChart(w http.ResponseWriter, r *http.Request) {
	months := 6
	if q := r.URL.Query().Get("months"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			months = n
		}
	}
	if months > 24 {
		months = 24
	}
	chart, err := h.repo.JobCompletionChart(r.Context(), months)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to load chart")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, chart)
}
