// Package service declares domain services implemented by the infrastructure layer.
package service

import "addressbook/internal/domain/entity"

// DistanceCalculator computes the geodesic distance between two coordinates.
type DistanceCalculator interface {
	// DistanceKm returns the distance between from and to in kilometres.
	DistanceKm(from, to entity.Coordinate) float64

	// Name identifies the formula, e.g. "vincenty".
	Name() string
}
