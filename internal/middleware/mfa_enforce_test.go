package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

// mfaStubRepo answers the enrollment check; anything else panics, which
// is fine because MFAEnforce must not touch the rest of the interface.
type mfaStubRepo struct {
	repo.Repo
	enrolled bool
}

func (s mfaStubRepo) UserHasTOTP(context.Context, int64) bool { return s.enrolled }

// sessionCookie creates a real server-side session and returns its cookie.
func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	auth.SetSessionCookie(rec, models.Session{
		UserID: 3,
		Role:   models.RoleWorker,
		Expiry: time.Now().Add(time.Hour),
	})
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func doMFAEnforce(t *testing.T, enrolled, required bool, path string, cookie *http.Cookie) int {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := MFAEnforce(mfaStubRepo{enrolled: enrolled}, required)(next)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

// The middleware runs at the mux level, before RequireAuth, so it must
// find the session from the cookie alone.
func TestMFAEnforceBlocksUnenrolledSession(t *testing.T) {
	code := doMFAEnforce(t, false, true, "/api/jobs", sessionCookie(t))
	assert.Equal(t, http.StatusForbidden, code)
}

func TestMFAEnforceAllowsEnrolledSession(t *testing.T) {
	code := doMFAEnforce(t, true, true, "/api/jobs", sessionCookie(t))
	assert.Equal(t, http.StatusOK, code)
}

func TestMFAEnforceExemptsEnrollmentPaths(t *testing.T) {
	cookie := sessionCookie(t)
	for _, path := range []string{"/auth/mfa/totp/setup", "/auth/mfa/totp/verify", "/auth/logout", "/auth/me"} {
		assert.Equal(t, http.StatusOK, doMFAEnforce(t, false, true, path, cookie), "path %s", path)
	}
}

func TestMFAEnforceDisabled(t *testing.T) {
	code := doMFAEnforce(t, false, false, "/api/jobs", sessionCookie(t))
	assert.Equal(t, http.StatusOK, code)
}

func TestMFAEnforcePassesAnonymousRequests(t *testing.T) {
	code := doMFAEnforce(t, false, true, "/api/jobs", nil)
	assert.Equal(t, http.StatusOK, code)
}
