package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// ProximityQuery asks for every address within DistanceKm of a point.
type ProximityQuery struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance"`
}

// Origin returns the query point.
func (q *ProximityQuery) Origin() entity.Coordinate {
	return entity.Coordinate{Lat: q.Latitude, Lng: q.Longitude}
}

// ProximityUsecase defines the radius search over stored addresses
type ProximityUsecase interface {
	// FindAddressesWithin scans all addresses and keeps those whose geodesic
	// distance to the origin is at most the query distance. Results keep store order.
	FindAddressesWithin(ctx context.Context, query *ProximityQuery) ([]*entity.Address, error)
}
