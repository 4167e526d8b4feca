// internal/handlers/activities/activities.go
package activities

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

// List returns recent activities, newest first. ?limit caps the count,
// default 50.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	list, err := h.repo.ListActivities(r.Context(), limit)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list activities")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, list)
}
