package httpctx

import (
	"context"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/models"
)

// Session returns the session from context if available.
func Session(ctx context.Context) (*models.Session, bool) {
	return auth.SessionFromContext(ctx)
}

// User returns the user pointer from context if available.
func User(ctx context.Context) (*models.User, bool) {
	return auth.UserFromContext(ctx)
}

// UserID returns a user id from context from either session or user.
func UserID(ctx context.Context) (int64, bool) {
	if s, ok := auth.SessionFromContext(ctx); ok && s != nil {
		return s.UserID, true
	}
	if u, ok := auth.UserFromContext(ctx); ok && u != nil {
		return u.ID, true
	}
	return 0, false
}

// Role returns the caller's role from either session or user.
func Role(ctx context.Context) (models.Role, bool) {
	if s, ok := auth.SessionFromContext(ctx); ok && s != nil {
		return s.Role, true
	}
	if u, ok := auth.UserFromContext(ctx); ok && u != nil {
		return u.Role, true
	}
	return "", false
}
