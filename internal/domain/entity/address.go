// Package entity contains the core business objects of the project.
package entity

// AddressFields are the client-owned attributes of an address.
// Updates always replace all of them together.
type AddressFields struct {
	Street    string  // Street line, e.g. "Main St".
	City      string  // City or locality.
	State     string  // State, province or region.
	Country   string  // Country name or code.
	Latitude  float64 // Degrees in [-90, 90].
	Longitude float64 // Degrees in [-180, 180].
}

// Address is a stored postal address with its geocoordinates.
type Address struct {
	ID int64 // Assigned by the store on creation; never changes afterwards.
	AddressFields
}

// Replace overwrites every client-owned field in one assignment.
func (a *Address) Replace(fields AddressFields) {
	a.AddressFields = fields
}

// Coordinate returns the position of the address.
func (a *Address) Coordinate() Coordinate {
	return Coordinate{Lat: a.Latitude, Lng: a.Longitude}
}
