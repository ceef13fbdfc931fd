package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// AddressInput carries the six client-owned address fields.
// Create and update both require all of them.
type AddressInput struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fields converts the input into the entity value written by the store.
func (in *AddressInput) Fields() entity.AddressFields {
	return entity.AddressFields{
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
}

// AddressUsecase defines the address book CRUD use cases
type AddressUsecase interface {
	CreateAddress(ctx context.Context, input *AddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context) ([]*entity.Address, error)
	GetAddress(ctx context.Context, id int64) (*entity.Address, error)
	// UpdateAddress replaces all fields and returns the stored record.
	UpdateAddress(ctx context.Context, id int64, input *AddressInput) (*entity.Address, error)
	// DeleteAddress returns the record as it was before deletion.
	DeleteAddress(ctx context.Context, id int64) (*entity.Address, error)
}
