// Package fixtures provides the static records used to drive package
// tests and the dev seed. Each function returns a fresh copy so tests can
// mutate freely without bleeding into each other.
package fixtures

import (
	"time"

	"github.com/Rax2004/Workforcepro/internal/models"
)

func strPtr(s string) *string     { return &s }
func i64Ptr(v int64) *int64       { return &v }
func timePtr(t time.Time) *time.Time { return &t }

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Users returns the five stock accounts: one admin, one HR manager, three
// workers.
func Users() []models.User {
	return []models.User{
		{ID: 1, Username: "admin", Role: models.RoleAdmin, Name: "Admin User",
			Email: strPtr("admin@company.com"), Phone: strPtr("(555) 123-4567"),
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Username: "hr.manager", Role: models.RoleHR, Name: "HR Manager",
			Email: strPtr("hr@company.com"), Phone: strPtr("(555) 234-5678"),
			CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Username: "john.doe", Role: models.RoleWorker, Name: "John Doe",
			Email: strPtr("john@company.com"), Phone: strPtr("(555) 345-6789"),
			CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Username: "mike.smith", Role: models.RoleWorker, Name: "Mike Smith",
			Email: strPtr("mike@company.com"), Phone: strPtr("(555) 456-7890"),
			CreatedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)},
		{ID: 5, Username: "sarah.wilson", Role: models.RoleWorker, Name: "Sarah Wilson",
			Email: strPtr("sarah@company.com"), Phone: strPtr("(555) 567-8901"),
			CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
}

// Workers returns the three stock worker profiles.
func Workers() []models.Worker {
	return []models.Worker{
		{ID: 1, UserID: 3, Specialty: models.SpecialtyPlumbing, Status: models.WorkerAvailable,
			Location: models.LatLng{Lat: 40.7128, Lng: -74.0060}, CompletedJobs: 25, Rating: "4.8", IsActive: true},
		{ID: 2, UserID: 4, Specialty: models.SpecialtyElectrical, Status: models.WorkerWorking,
			Location: models.LatLng{Lat: 40.7589, Lng: -73.9851}, CompletedJobs: 18, Rating: "4.6", IsActive: true},
		{ID: 3, UserID: 5, Specialty: models.SpecialtyHVAC, Status: models.WorkerAvailable,
			Location: models.LatLng{Lat: 40.7505, Lng: -73.9934}, CompletedJobs: 32, Rating: "4.9", IsActive: true},
	}
}

// Jobs returns four stock jobs covering assigned, in_progress, and two
// pending lifecycle stages.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID: 1, Title: "Emergency Pipe Repair",
			Description: "Kitchen sink is leaking, customer reports water damage. Need immediate attention.",
			Type:        models.SpecialtyPlumbing, Priority: models.PriorityUrgent, Status: models.JobAssigned,
			Location:   models.JobLocation{Address: "123 Main St, Downtown", Lat: 40.7128, Lng: -74.0060},
			AssignedTo: i64Ptr(1), CreatedBy: 2,
			CustomerName: "Mrs. Johnson", CustomerPhone: "(555) 123-4567",
			EstimatedDuration: 2,
			ScheduledAt:       timePtr(base.Add(2 * time.Hour)),
			CreatedAt:         base.Add(-2 * time.Hour),
		},
		{
			ID: 2, Title: "Electrical Panel Upgrade",
			Description: "Replace old electrical panel with modern circuit breakers.",
			Type:        models.SpecialtyElectrical, Priority: models.PriorityNormal, Status: models.JobInProgress,
			Location:   models.JobLocation{Address: "456 Oak Ave, Uptown", Lat: 40.7589, Lng: -73.9851},
			AssignedTo: i64Ptr(2), CreatedBy: 2,
			CustomerName: "Mr. Williams", CustomerPhone: "(555) 234-5678",
			EstimatedDuration: 4,
			StartedAt:         timePtr(base.Add(-1 * time.Hour)),
			CreatedAt:         base.Add(-4 * time.Hour),
		},
		{
			ID: 3, Title: "HVAC System Maintenance",
			Description: "Regular maintenance check for office building HVAC system.",
			Type:        models.SpecialtyHVAC, Priority: models.PriorityNormal, Status: models.JobPending,
			Location:  models.JobLocation{Address: "789 Business Blvd, Business District", Lat: 40.7505, Lng: -73.9934},
			CreatedBy: 2,
			CustomerName: "ABC Corporation", CustomerPhone: "(555) 345-6789",
			EstimatedDuration: 3,
			ScheduledAt:       timePtr(base.Add(24 * time.Hour)),
			CreatedAt:         base.Add(-30 * time.Minute),
		},
		{
			ID: 4, Title: "Drilling for New Foundation",
			Description: "Drill holes for new building foundation in downtown area.",
			Type:        models.SpecialtyDrilling, Priority: models.PriorityHigh, Status: models.JobPending,
			Location:  models.JobLocation{Address: "321 Construction Ave, Downtown", Lat: 40.7200, Lng: -74.0100},
			CreatedBy: 2,
			CustomerName: "Construction Corp", CustomerPhone: "(555) 456-7890",
			EstimatedDuration: 6,
			ScheduledAt:       timePtr(base.Add(48 * time.Hour)),
			CreatedAt:         base.Add(-1 * time.Hour),
		},
	}
}

// Activities returns a short audit trail matching the stock jobs.
func Activities() []models.Activity {
	return []models.Activity{
		{ID: 1, Type: models.ActivityJobAssigned, Description: "HR Manager assigned plumbing job to John Doe",
			UserID: 2, EntityID: 1, Metadata: map[string]any{"jobType": "plumbing", "priority": "urgent"},
			CreatedAt: base.Add(-30 * time.Minute)},
		{ID: 2, Type: models.ActivityJobStarted, Description: "Mike Smith started electrical work",
			UserID: 4, EntityID: 2, Metadata: map[string]any{"jobType": "electrical", "priority": "normal"},
			CreatedAt: base.Add(-45 * time.Minute)},
		{ID: 3, Type: models.ActivityClockedIn, Description: "John Doe clocked in",
			UserID: 3, EntityID: 1, Metadata: map[string]any{"lat": 40.7128, "lng": -74.0060},
			CreatedAt: base.Add(-3 * time.Hour)},
		{ID: 4, Type: models.ActivityJobCompleted, Description: "Sarah Wilson completed HVAC maintenance",
			UserID: 5, EntityID: 3, Metadata: map[string]any{"jobType": "hvac", "priority": "normal"},
			CreatedAt: base.Add(-2 * time.Hour)},
		{ID: 5, Type: models.ActivityJobCreated, Description: "New drilling job created for downtown location",
			UserID: 2, EntityID: 4, Metadata: map[string]any{"jobType": "drilling", "priority": "high"},
			CreatedAt: base.Add(-1 * time.Hour)},
	}
}

// Metrics returns the stock dashboard counters.
func Metrics() models.DashboardMetrics {
	return models.DashboardMetrics{
		TotalHRs:          1,
		TotalWorkers:      3,
		JobsAssigned:      2,
		JobsPending:       2,
		ActiveJobs:        1,
		CompletedToday:    1,
		AvailableWorkers:  2,
		PendingAssignment: 2,
	}
}
