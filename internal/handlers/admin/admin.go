package admin

import (
	"encoding/json"
	"net/http"
	"time"

	httpserver "github.com/Rax2004/Workforcepro/internal/http"
	"github.com/Rax2004/Workforcepro/internal/security"
	"github.com/Rax2004/Workforcepro/internal/session"
)

// ListSessionsHandler returns JSON of active sessions. Route access is
// restricted to admins by the router.
func ListSessionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		type item struct {
			ID        string    `json:"id"`
			UserID    int64     `json:"userId"`
			Role      string    `json:"role"`
			ExpiresAt time.Time `json:"expiresAt"`
		}
		entries := session.DefaultStore.List()
		out := make([]item, 0, len(entries))
		for _, e := range entries {
			out = append(out, item{
				ID:        e.ID,
				UserID:    e.Session.UserID,
				Role:      string(e.Session.Role),
				ExpiresAt: e.Session.Expiry,
			})
		}
		httpserver.JSON(w, http.StatusOK, out)
	}
}

type denyRequest struct {
	UserID int64 `json:"userId"`
}

// DenyUserHandler adds a user id to the denylist.
func DenyUserHandler(d *security.Denylist) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer req.Body.Close()
		var body denyRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<16)).Decode(&body); err != nil || body.UserID <= 0 {
			httpserver.Error(w, http.StatusBadRequest, "userId is required")
			return
		}
		d.Add(body.UserID)
		httpserver.JSON(w, http.StatusOK, map[string]any{"denied": d.List()})
	}
}

// AllowUserHandler removes a user id from the denylist.
func AllowUserHandler(d *security.Denylist) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer req.Body.Close()
		var body denyRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<16)).Decode(&body); err != nil || body.UserID <= 0 {
			httpserver.Error(w, http.StatusBadRequest, "userId is required")
			return
		}
		d.Remove(body.UserID)
		httpserver.JSON(w, http.StatusOK, map[string]any{"denied": d.List()})
	}
}
