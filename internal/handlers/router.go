// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/geocode"
	"github.com/Rax2004/Workforcepro/internal/handlers/activities"
	"github.com/Rax2004/Workforcepro/internal/handlers/admin"
	"github.com/Rax2004/Workforcepro/internal/handlers/dashboard"
	jobsapi "github.com/Rax2004/Workforcepro/internal/handlers/jobs"
	"github.com/Rax2004/Workforcepro/internal/handlers/reports"
	"github.com/Rax2004/Workforcepro/internal/handlers/timeclock"
	"github.com/Rax2004/Workforcepro/internal/handlers/workers"
	"github.com/Rax2004/Workforcepro/internal/middleware"
	"github.com/Rax2004/Workforcepro/internal/models"
	"github.com/Rax2004/Workforcepro/internal/repo"
	"github.com/Rax2004/Workforcepro/internal/security"
)

// RegisterRoutes mounts the API surface. Auth endpoints live under /auth;
// everything under /api requires a session.
func RegisterRoutes(mux *chi.Mux, r repo.Repo, g geocode.Geocoder) {
	j := jobsapi.New(r, g)
	wk := workers.New(r)
	rep := reports.New(r)
	tc := timeclock.New(r)
	dash := dashboard.New(r)
	act := activities.New(r)

	mux.Route("/auth", func(sr chi.Router) {
		sr.Post("/login", auth.LoginHandler(r))
		sr.Post("/logout", auth.LogoutHandler())
		sr.Get("/me", auth.MeHandler(r))
		sr.Get("/mfa/totp/setup", auth.TOTPSetupBeginHandler(r))
		sr.Post("/mfa/totp/verify", auth.TOTPSetupVerifyHandler(r))

		sr.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireAuth(r))
			gr.Use(middleware.RequireRole(models.RoleAdmin))
			gr.Post("/set-password", auth.SetPasswordHandler(r))
		})
	})

	mux.Route("/api", func(sr chi.Router) {
		// Apply auth to the whole group ONCE
		sr.Use(middleware.RequireAuth(r))

		sr.Route("/jobs", func(jr chi.Router) {
			jr.Get("/", j.List)
			jr.Get("/my", j.My)
			jr.Patch("/{id}", j.Patch)
			jr.With(middleware.RequireRole(models.RoleAdmin, models.RoleHR)).Post("/", j.Create)
		})

		sr.Get("/workers", wk.List)
		sr.Get("/activities", act.List)

		sr.Route("/job-reports", func(rr chi.Router) {
			rr.Get("/", rep.List)
			rr.With(middleware.RequireRole(models.RoleWorker)).Post("/", rep.Create)
			rr.With(middleware.RequireRole(models.RoleAdmin, models.RoleHR)).Patch("/{id}", rep.Review)
		})

		sr.Route("/time-tracking", func(tr chi.Router) {
			tr.Use(middleware.RequireRole(models.RoleWorker))
			tr.Post("/clock-in", tc.ClockIn)
			tr.Post("/clock-out", tc.ClockOut)
			tr.Get("/current", tc.Current)
		})

		sr.Route("/dashboard", func(dr chi.Router) {
			dr.Use(middleware.RequireRole(models.RoleAdmin, models.RoleHR))
			dr.Get("/metrics", dash.Metrics)
			dr.Get("/job-completion-chart", dash.JobCompletionChart)
		})
	})

	// Admin routes
	mux.Route("/admin", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Use(middleware.RequireRole(models.RoleAdmin))
		sr.Get("/sessions", admin.ListSessionsHandler())
		sr.Post("/denylist", admin.DenyUserHandler(security.Default))
		sr.Delete("/denylist", admin.AllowUserHandler(security.Default))
	})
}
