package impl

import (
	"context"
	"log/slog"
	"math"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/usecase"

	"go.uber.org/fx"
)

// ctxCheckInterval is how many records are scanned between cancellation checks.
const ctxCheckInterval = 1024

// ProximityServiceParams holds dependencies for the proximity service, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Calculator  service.DistanceCalculator
	Logger      *slog.Logger
}

type proximityService struct {
	addressRepo repository.AddressRepository
	calculator  service.DistanceCalculator
	logger      *slog.Logger
}

// NewProximityService creates a new proximity service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &proximityService{
		addressRepo: params.AddressRepo,
		calculator:  params.Calculator,
		logger:      logger,
	}
}

// FindAddressesWithin lists the store and keeps addresses within the query distance
func (s *proximityService) FindAddressesWithin(ctx context.Context, query *usecase.ProximityQuery) ([]*entity.Address, error) {
	if err := validateProximityQuery(query); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	matched, err := s.filterWithin(ctx, query.Origin(), query.DistanceKm, addresses)
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).Debug("Proximity search finished",
		slog.String("formula", s.calculator.Name()),
		slog.Float64("distance_km", query.DistanceKm),
		slog.Int("scanned", len(addresses)),
		slog.Int("matched", len(matched)),
	)

	return matched, nil
}

// filterWithin is a linear scan; it keeps the input order.
func (s *proximityService) filterWithin(ctx context.Context, origin entity.Coordinate, radiusKm float64, addresses []*entity.Address) ([]*entity.Address, error) {
	matched := make([]*entity.Address, 0)

	for i, address := range addresses {
		if i%ctxCheckInterval == 0 && ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "proximity search canceled")
		}

		if s.calculator.DistanceKm(origin, address.Coordinate()) <= radiusKm {
			matched = append(matched, address)
		}
	}

	return matched, nil
}

func validateProximityQuery(query *usecase.ProximityQuery) error {
	if query == nil {
		return domainerrors.ErrValidationFailed.WithDetails("query is required")
	}

	if !query.Origin().Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	if math.IsNaN(query.DistanceKm) || query.DistanceKm < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("distance must be a non-negative number of kilometres")
	}

	return nil
}
