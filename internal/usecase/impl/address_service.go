package impl

import (
	"context"
	"log/slog"
	"strconv"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/usecase"

	"go.uber.org/fx"
)

// AddressServiceParams holds dependencies for the address service, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

type addressService struct {
	addressRepo repository.AddressRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &addressService{
		addressRepo: params.AddressRepo,
		txManager:   params.TxManager,
		logger:      logger,
	}
}

// CreateAddress stores a new address and returns it with its assigned ID
func (s *addressService) CreateAddress(ctx context.Context, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.Address{AddressFields: input.Fields()}
	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	logs.FromContext(ctx, s.logger).Info("Address created", slog.Int64("address_id", address.ID))

	return address, nil
}

// ListAddresses returns every stored address
func (s *addressService) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns a single address
func (s *addressService) GetAddress(ctx context.Context, id int64) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id, "failed to find address by ID")
	}

	return address, nil
}

// UpdateAddress replaces all fields of an existing address inside one transaction
func (s *addressService) UpdateAddress(ctx context.Context, id int64, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Address
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		addressRepo := factory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			return translateNotFound(err, id, "failed to find address by ID")
		}

		address.Replace(input.Fields())

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return translateNotFound(err, id, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).Info("Address updated", slog.Int64("address_id", id))

	return updated, nil
}

// DeleteAddress removes an address inside one transaction and returns its last state
func (s *addressService) DeleteAddress(ctx context.Context, id int64) (*entity.Address, error) {
	var deleted *entity.Address
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		addressRepo := factory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			return translateNotFound(err, id, "failed to find address by ID")
		}

		if err := addressRepo.DeleteAddress(ctx, id); err != nil {
			return translateNotFound(err, id, "failed to delete address")
		}

		deleted = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).Info("Address deleted", slog.Int64("address_id", id))

	return deleted, nil
}

// translateNotFound maps the repository sentinel to the client-facing error
func translateNotFound(err error, id int64, message string) error {
	if errors.Is(err, repository.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound.WrapMessage("address " + strconv.FormatInt(id, 10))
	}

	return errors.Wrap(err, message)
}

func validateAddressInput(input *usecase.AddressInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	if !entity.NewCoordinate(input.Latitude, input.Longitude).Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	return nil
}
