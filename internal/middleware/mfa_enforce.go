package middleware

import (
	"net/http"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

// MFAEnforce blocks users who have not enrolled a TOTP secret when the
// deployment requires it. The setup endpoints themselves stay reachable
// so an un-enrolled user can finish enrollment.
func MFAEnforce(r repo.Repo, required bool) func(http.Handler) http.Handler {
	exempt := map[string]struct{}{
		"/auth/mfa/totp/setup":  {},
		"/auth/mfa/totp/verify": {},
		"/auth/logout":          {},
		"/auth/me":              {},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !required {
				next.ServeHTTP(w, req)
				return
			}
			if _, ok := exempt[req.URL.Path]; ok {
				next.ServeHTTP(w, req)
				return
			}
			// Read the cookie directly: this runs at the mux level,
			// before RequireAuth has populated the context.
			sess := auth.ReadSession(req)
			if sess == nil {
				next.ServeHTTP(w, req)
				return
			}
			if !r.UserHasTOTP(req.Context(), sess.UserID) {
				http.Error(w, "mfa enrollment required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
