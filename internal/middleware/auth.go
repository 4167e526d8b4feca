package middleware

import (
	"net/http"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

// RequireAuth authenticates using the "session" cookie, loads the user by
// Session.UserID, and injects both session and user into the context.
func RequireAuth(r repo.Repo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s := auth.ReadSession(req)
			if s == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := r.GetUserByID(req.Context(), s.UserID)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithSession(req.Context(), s)
			ctx = auth.WithUser(ctx, &user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
