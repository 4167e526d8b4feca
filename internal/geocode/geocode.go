// Package geocode abstracts address-to-coordinate resolution. The job
// model only records whatever point it is handed; actual resolution is a
// deployment concern.
package geocode

import (
	"context"

	"github.com/Rax2004/Workforcepro/internal/models"
)

// Geocoder resolves a street address to a geographic point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.LatLng, error)
}

// Static always answers with a fixed point. It backs dev and test
// deployments where no geocoding provider is wired up.
type Static struct {
	Point models.LatLng
}

// NewStatic returns a Static geocoder for the given coordinates.
func NewStatic(lat, lng float64) Static {
	return Static{Point: models.LatLng{Lat: lat, Lng: lng}}
}

func (s Static) Geocode(_ context.Context, _ string) (models.LatLng, error) {
	return s.Point, nil
}
