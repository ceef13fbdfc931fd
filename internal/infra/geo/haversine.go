package geo

import (
	"addressbook/config"
	"addressbook/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Haversine computes great-circle distance on a sphere with orb.EarthRadius.
// It is within about 0.5% of the ellipsoidal distance.
type Haversine struct{}

// NewHaversine creates a spherical distance calculator.
func NewHaversine() *Haversine {
	return &Haversine{}
}

// DistanceKm returns the haversine distance in kilometres.
func (Haversine) DistanceKm(from, to entity.Coordinate) float64 {
	return geo.DistanceHaversine(toPoint(from), toPoint(to)) / metersPerKm
}

// Name returns the formula name.
func (Haversine) Name() string {
	return config.FormulaHaversine
}

// orb points are (lng, lat).
func toPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
