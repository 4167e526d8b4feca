package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Rax2004/Workforcepro/internal/auth"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		// Default to 200 if Write is called first
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// SlogRequestLogger logs each HTTP request with structured fields.
func SlogRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		dur := time.Since(start)

		attrs := []any{
			"method", r.Method,
			"url", r.URL.String(),
			"status", rw.status,
			"duration", dur,
			"bytes", rw.bytes,
		}
		if rid, ok := GetRequestID(r.Context()); ok {
			attrs = append(attrs, "request_id", rid)
		}
		if sess, ok := auth.SessionFromContext(r.Context()); ok && sess != nil {
			attrs = append(attrs, "user_id", sess.UserID, "role", sess.Role)
		} else if u, ok := auth.UserFromContext(r.Context()); ok && u != nil {
			attrs = append(attrs, "user_id", u.ID, "role", u.Role)
		}
		slog.InfoContext(r.Context(), "request", attrs...)
	})
}
