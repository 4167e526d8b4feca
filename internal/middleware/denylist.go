package middleware

import (
	"net/http"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/security"
)

// Denylist rejects requests from users on the given denylist. Must run
// after RequireAuth so the session is in context.
func Denylist(d *security.Denylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := auth.SessionFromContext(r.Context()); ok && sess != nil {
				if d.Contains(sess.UserID) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
