// Package jobs holds the pure job-creation and assignment logic shared by
// the HTTP handlers. Nothing here talks to the network or the database;
// callers own submission, cache invalidation, and notifications.
package jobs

import (
	"strconv"
	"strings"

	"github.com/Rax2004/Workforcepro/internal/models"
)

// ValidationError is a local, pre-submission failure carrying the exact
// user-facing message. Distinct from remote failures, whose message text
// is passed through verbatim by the handlers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingFields    = &ValidationError{Message: "Please fill in all required fields"}
	ErrNoWorkerSelected = &ValidationError{Message: "Please select a worker"}
)

// DefaultEstimatedDuration is assumed when the form leaves duration blank.
const DefaultEstimatedDuration = 2

// WorkerNone is the sentinel the worker-selection dropdown sends for
// "No assignment".
const WorkerNone = "none"

// Draft carries raw form field values for a new job, all as strings, the
// way the creation form submits them.
type Draft struct {
	Title             string
	Type              string
	Priority          string
	Description       string
	Address           string
	CustomerName      string
	CustomerPhone     string
	EstimatedDuration string
	Worker            string // WorkerNone, empty, or a numeric worker id
}

// CreateJobRequest is the wire payload for POST /api/jobs. AssignedTo is
// null when no worker was chosen.
type CreateJobRequest struct {
	Title             string             `json:"title"`
	Type              models.Specialty   `json:"type"`
	Priority          models.Priority    `json:"priority"`
	Description       string             `json:"description"`
	Location          models.JobLocation `json:"location"`
	CustomerName      string             `json:"customerName"`
	CustomerPhone     string             `json:"customerPhone"`
	EstimatedDuration float64            `json:"estimatedDuration"`
	AssignedTo        *int64             `json:"assignedTo"`
}

// Validate checks the required fields: title, type, and location address.
// It returns ErrMissingFields when any is empty after trimming, or when
// the type is not a known specialty.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Address) == "" {
		return ErrMissingFields
	}
	if !models.Specialty(d.Type).Valid() {
		return ErrMissingFields
	}
	return nil
}

// Payload validates the draft and assembles the creation request around
// the given coordinates. Geocoding the address is the caller's concern;
// the draft records whatever point it is handed. Optional fields default:
// priority normal, description/customer fields empty, duration 2 hours,
// assignedTo null unless a worker id was selected.
func (d Draft) Payload(coords models.LatLng) (CreateJobRequest, error) {
	if err := d.Validate(); err != nil {
		return CreateJobRequest{}, err
	}

	priority := models.Priority(d.Priority)
	if !priority.Valid() {
		priority = models.PriorityNormal
	}

	duration := float64(DefaultEstimatedDuration)
	if v, err := strconv.ParseFloat(strings.TrimSpace(d.EstimatedDuration), 64); err == nil && v > 0 {
		duration = v
	}

	return CreateJobRequest{
		Title:       strings.TrimSpace(d.Title),
		Type:        models.Specialty(d.Type),
		Priority:    priority,
		Description: d.Description,
		Location: models.JobLocation{
			Address: strings.TrimSpace(d.Address),
			Lat:     coords.Lat,
			Lng:     coords.Lng,
		},
		CustomerName:      d.CustomerName,
		CustomerPhone:     d.CustomerPhone,
		EstimatedDuration: duration,
		AssignedTo:        parseWorkerSelection(d.Worker),
	}, nil
}

// parseWorkerSelection maps the dropdown value to the wire value: nil for
// absent/"none"/garbage, otherwise the numeric worker id.
func parseWorkerSelection(value string) *int64 {
	v := strings.TrimSpace(value)
	if v == "" || v == WorkerNone {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}
