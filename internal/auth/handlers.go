// internal/auth/handlers.go
package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
)

const totpIssuer = "WorkforcePro"

// POST /auth/login
// Body: { "username": "...", "password": "...", "totp_code": "123456" }
func LoginHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
			TOTPCode string `json:"totp_code"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		username := strings.ToLower(strings.TrimSpace(body.Username))
		if username == "" || body.Password == "" {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}

		cred, user, err := r.GetLocalCredentialByUsername(req.Context(), username)
		if err != nil {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}
		if !VerifyPassword(body.Password, cred.PasswordHash) {
			slog.WarnContext(req.Context(), "login bad password", "username", username)
			if ip, ok := ClientIP(req); ok {
				_ = r.RecordLoginFailure(req.Context(), username, ip)
			}
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}

		// If TOTP is enrolled, enforce it
		if r.UserHasTOTP(req.Context(), user.ID) {
			if strings.TrimSpace(body.TOTPCode) == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"error":   "mfa_required",
					"message": "Two-factor code required",
				})
				return
			}
			sec, ok := r.GetTOTPSecret(req.Context(), user.ID)
			if !ok || !validateTOTP(sec, body.TOTPCode) {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"error":   "invalid_mfa",
					"message": "Invalid two-factor code",
				})
				return
			}
		}

		SetSessionCookie(w, models.Session{
			UserID: user.ID,
			Role:   user.Role,
			Expiry: time.Now().Add(SessionTTL),
		})

		if ip, ok := ClientIP(req); ok {
			_ = r.RecordLoginSuccess(req.Context(), username, ip)
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
	}
}

// POST /auth/logout
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ClearSessionCookie(w, req)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /auth/me returns the logged-in user, with the worker profile when
// one exists.
func MeHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sess := ReadSession(req)
		if sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := r.GetUserByID(req.Context(), sess.UserID)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		out := map[string]any{"user": user}
		if IsWorker(&user) {
			if wk, err := r.GetWorkerByUserID(req.Context(), user.ID); err == nil {
				out["worker"] = wk
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /auth/mfa/totp/setup  -> { otpauth_url, secret }
func TOTPSetupBeginHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sess := ReadSession(req)
		if sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := r.GetUserByID(req.Context(), sess.UserID)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      totpIssuer,
			AccountName: user.Username,
			Period:      30,
			Digits:      otp.DigitsSix,
			Algorithm:   otp.AlgorithmSHA1, // Google Authenticator-compatible
		})
		if err != nil {
			http.Error(w, "totp error", http.StatusInternalServerError)
			return
		}
		if err := r.SetTOTPSecret(req.Context(), sess.UserID, key.Secret()); err != nil {
			http.Error(w, "store totp error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"otpauth_url": key.URL(),
			"secret":      key.Secret(),
		})
	}
}

// POST /auth/mfa/totp/verify  Body: { "code": "123456" }
func TOTPSetupVerifyHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sess := ReadSession(req)
		if sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || strings.TrimSpace(body.Code) == "" {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		secret, ok := r.GetTOTPSecret(req.Context(), sess.UserID)
		if !ok {
			http.Error(w, "no totp setup", http.StatusBadRequest)
			return
		}
		if !validateTOTP(secret, body.Code) {
			http.Error(w, "invalid code", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// POST /auth/set-password  Body: { "user_id": 3, "username": "john.doe", "password": "..." }
// Creates the local credential when none exists, otherwise rehashes.
// Admin only; the router enforces the role.
func SetPasswordHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			UserID   int64  `json:"user_id"`
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		username := strings.ToLower(strings.TrimSpace(body.Username))
		if body.UserID <= 0 || len(body.Password) < 8 {
			http.Error(w, "user_id and a password of at least 8 characters are required", http.StatusBadRequest)
			return
		}

		phc, err := HashPassword(body.Password, DefaultArgonParams())
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}

		if username != "" {
			if _, _, err := r.GetLocalCredentialByUsername(req.Context(), username); err != nil {
				if err := r.CreateLocalCredential(req.Context(), body.UserID, username, phc); err != nil {
					http.Error(w, "store credential error", http.StatusInternalServerError)
					return
				}
				writeJSON(w, http.StatusOK, map[string]any{"ok": true, "created": true})
				return
			}
		}
		if err := r.UpdateLocalPasswordHash(req.Context(), body.UserID, phc); err != nil {
			http.Error(w, "store credential error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func validateTOTP(secret, code string) bool {
	if totp.Validate(code, secret) {
		return true
	}
	// Allow small clock skew
	ok, _ := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
