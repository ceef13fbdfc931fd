// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrAddressNotFound is returned when no address has the requested ID.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the database operations on the addresses table.
type AddressRepository interface {
	// CreateAddress persists a new address and sets its generated ID.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if it does not exist.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// ListAddresses retrieves every address ordered by ID.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// UpdateAddress writes all client-owned fields of an existing address.
	// Returns ErrAddressNotFound if it does not exist.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	// Returns ErrAddressNotFound if it does not exist.
	DeleteAddress(ctx context.Context, id int64) error
}
