// internal/handlers/workers/workers.go
package workers

import (
	"net/http"

	httpserver "github.com/Rax2004/Workforcepro/internal/http"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(r repo.Repo) *Handler {
	return &Handler{repo: r}
}

// List returns all active workers denormalized with their user details.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.repo.ListWorkers(r.Context())
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list workers")
		httpserver.Error(w, status, msg)
		return
	}
	users, err := h.repo.ListUsers(r.Context())
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to list users")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, models.WorkersWithUserDetails(workers, users))
}
