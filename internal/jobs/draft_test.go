package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rax2004/Workforcepro/internal/models"
)

var testCoords = models.LatLng{Lat: 40.7128, Lng: -74.0060}

func TestValidateRejectsEmptyDraft(t *testing.T) {
	err := Draft{}.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please fill in all required fields", err.Error())
}

func TestValidateRequiredFields(t *testing.T) {
	cases := map[string]Draft{
		"missing title":   {Type: "plumbing", Address: "123 Test St"},
		"missing address": {Title: "Test Job", Type: "plumbing"},
		"missing type":    {Title: "Test Job", Address: "123 Test St"},
		"unknown type":    {Title: "Test Job", Type: "carpentry", Address: "123 Test St"},
		"blank title":     {Title: "   ", Type: "plumbing", Address: "123 Test St"},
	}
	for name, d := range cases {
		assert.ErrorIs(t, d.Validate(), ErrMissingFields, name)
	}
}

func TestPayloadMinimalDraftGetsDefaults(t *testing.T) {
	d := Draft{Title: "Test Job", Type: "plumbing", Address: "123 Test St"}
	got, err := d.Payload(testCoords)
	require.NoError(t, err)

	assert.Equal(t, CreateJobRequest{
		Title:    "Test Job",
		Type:     models.SpecialtyPlumbing,
		Priority: models.PriorityNormal,
		Location: models.JobLocation{
			Address: "123 Test St",
			Lat:     40.7128,
			Lng:     -74.0060,
		},
		EstimatedDuration: 2,
		AssignedTo:        nil,
	}, got)
}

func TestPayloadRejectsInvalidDraft(t *testing.T) {
	_, err := Draft{Type: "plumbing"}.Payload(testCoords)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestPayloadParsesDuration(t *testing.T) {
	d := Draft{Title: "T", Type: "hvac", Address: "A", EstimatedDuration: "3.5"}
	got, err := d.Payload(testCoords)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.EstimatedDuration)

	for _, bad := range []string{"", "abc", "-1", "0"} {
		d.EstimatedDuration = bad
		got, err := d.Payload(testCoords)
		require.NoError(t, err)
		assert.Equal(t, float64(DefaultEstimatedDuration), got.EstimatedDuration, "duration %q", bad)
	}
}

func TestPayloadInvalidPriorityFallsBackToNormal(t *testing.T) {
	d := Draft{Title: "T", Type: "hvac", Address: "A", Priority: "asap"}
	got, err := d.Payload(testCoords)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, got.Priority)

	d.Priority = "urgent"
	got, err = d.Payload(testCoords)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, got.Priority)
}

func TestPayloadWorkerSelection(t *testing.T) {
	d := Draft{Title: "T", Type: "hvac", Address: "A"}

	d.Worker = "3"
	got, err := d.Payload(testCoords)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, int64(3), *got.AssignedTo)

	for _, none := range []string{"", "none", "abc", "0", "-2"} {
		d.Worker = none
		got, err := d.Payload(testCoords)
		require.NoError(t, err)
		assert.Nil(t, got.AssignedTo, "worker %q", none)
	}
}
