// internal/auth/predicates.go
package auth

import "github.com/Rax2004/Workforcepro/internal/models"

// Role predicates used across handlers and middleware. A nil user always
// answers false; absence of a login is never an error here.

func IsAdmin(u *models.User) bool { return u != nil && u.Role == models.RoleAdmin }

func IsHR(u *models.User) bool { return u != nil && u.Role == models.RoleHR }

func IsWorker(u *models.User) bool { return u != nil && u.Role == models.RoleWorker }

// CanCreateJobs reports whether the user may create jobs. Admin and HR
// only; workers receive work, they do not open it.
func CanCreateJobs(u *models.User) bool { return IsAdmin(u) || IsHR(u) }

// CanAssignJobs reports whether the user may bind workers to jobs.
func CanAssignJobs(u *models.User) bool { return IsAdmin(u) || IsHR(u) }
