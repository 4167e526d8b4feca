package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Rax2004/Workforcepro/internal/auth"
)

// private context keys for logging enrichment
type ctxKey string

const (
	ctxLogUserID ctxKey = "log_user_id"
	ctxLogRole   ctxKey = "log_role"
)

// EnrichLogger stores user_id/role into context for logging handlers to
// pick up.
func EnrichLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sess, ok := auth.SessionFromContext(ctx); ok && sess != nil {
			ctx = context.WithValue(ctx, ctxLogUserID, strconv.FormatInt(sess.UserID, 10))
			ctx = context.WithValue(ctx, ctxLogRole, string(sess.Role))
		} else if u, ok := auth.UserFromContext(ctx); ok && u != nil {
			ctx = context.WithValue(ctx, ctxLogUserID, strconv.FormatInt(u.ID, 10))
			ctx = context.WithValue(ctx, ctxLogRole, string(u.Role))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLogUserID returns the enriched user id if set.
func GetLogUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxLogUserID).(string)
	return v, ok && v != ""
}

// GetLogRole returns the enriched role if set.
func GetLogRole(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxLogRole).(string)
	return v, ok && v != ""
}
