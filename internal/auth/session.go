// internal/auth/session.go
package auth

import (
	"context"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/session"
)

type ctxKeyUser struct{}
type ctxKeySession struct{}

// cookieSecure controls whether the session cookie is marked Secure.
// Default true; main() overrides it from config for local dev.
var cookieSecure = true

func SetCookieSecurity(secure bool) { cookieSecure = secure }

var sameSiteMode = http.SameSiteLaxMode

// SetCookieSameSite configures the SameSite mode: "lax", "none", "strict".
func SetCookieSameSite(mode string) {
	switch mode {
	case "none":
		sameSiteMode = http.SameSiteNoneMode
	case "strict":
		sameSiteMode = http.SameSiteStrictMode
	default:
		sameSiteMode = http.SameSiteLaxMode
	}
}

// SessionTTL is how long a login lasts before the cookie and the stored
// session expire together.
const SessionTTL = 8 * time.Hour

// SetSessionCookie stores the session server-side and sets an opaque
// session id cookie.
func SetSessionCookie(w http.ResponseWriter, s models.Session) {
	sid := session.DefaultStore.Create(s)
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: sameSiteMode,
		Expires:  s.Expiry,
	})
}

// ClearSessionCookie deletes the server-side session (best effort) and
// expires the cookie.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session"); err == nil && c.Value != "" {
		session.DefaultStore.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: sameSiteMode,
	})
}

// ReadSession resolves the "session" cookie to its stored session, or nil.
func ReadSession(r *http.Request) *models.Session {
	c, err := r.Cookie("session")
	if err != nil || c.Value == "" {
		return nil
	}
	sess, ok := session.DefaultStore.Get(c.Value)
	if !ok {
		return nil
	}
	// Return a copy so callers cannot mutate the store.
	s := sess
	return &s
}

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, u)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(*models.User)
	return u, ok
}

func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, s)
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(ctxKeySession{}).(*models.Session)
	return s, ok
}

// ClientIP extracts a best-effort client IP from proxy headers or
// RemoteAddr.
func ClientIP(r *http.Request) (netip.Addr, bool) {
	if ff := r.Header.Get("X-Forwarded-For"); ff != "" {
		// XFF may be a list: client, proxy1, proxy2
		parts := strings.Split(ff, ",")
		if len(parts) > 0 {
			if ip, err := netip.ParseAddr(strings.TrimSpace(parts[0])); err == nil {
				return ip, true
			}
		}
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		if ip, err := netip.ParseAddr(strings.TrimSpace(rip)); err == nil {
			return ip, true
		}
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	if ip, err := netip.ParseAddr(host); err == nil {
		return ip, true
	}
	return netip.Addr{}, false
}
