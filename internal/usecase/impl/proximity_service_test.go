package impl

import (
	"context"
	"math"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/infra/geo"
	mockRepo "addressbook/internal/mocks/repository"
	mockSvc "addressbook/internal/mocks/service"
	"addressbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProximityServiceWithVincenty(t *testing.T) (usecase.ProximityUsecase, *mockRepo.MockAddressRepository) {
	t.Helper()

	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewProximityService(ProximityServiceParams{
		AddressRepo: addressRepo,
		Calculator:  geo.NewVincenty(),
		Logger:      newDiscardLogger(),
	})

	return service, addressRepo
}

func addressAt(id int64, lat, lng float64) *entity.Address {
	return &entity.Address{
		ID: id,
		AddressFields: entity.AddressFields{
			Street: "Street", City: "City", State: "State", Country: "Country",
			Latitude: lat, Longitude: lng,
		},
	}
}

func TestProximityService_RadiusBoundary(t *testing.T) {
	// 0.0898315 degrees of longitude on the equator is about 10 km.
	stored := []*entity.Address{addressAt(1, 0, 0.0898315)}

	tests := []struct {
		name     string
		radiusKm float64
		want     int
	}{
		{name: "radius 9 excludes", radiusKm: 9, want: 0},
		{name: "radius 11 includes", radiusKm: 11, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, addressRepo := newProximityServiceWithVincenty(t)

			ctx := context.Background()
			addressRepo.EXPECT().ListAddresses(ctx).Return(stored, nil)

			addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
				Latitude: 0, Longitude: 0, DistanceKm: tt.radiusKm,
			})

			require.NoError(t, err)
			assert.Len(t, addresses, tt.want)
		})
	}
}

func TestProximityService_ZeroRadius(t *testing.T) {
	service, addressRepo := newProximityServiceWithVincenty(t)

	ctx := context.Background()
	coincident := addressAt(2, 39.78, -89.65)
	addressRepo.EXPECT().ListAddresses(ctx).Return([]*entity.Address{
		addressAt(1, 39.87, -89.65),
		coincident,
	}, nil)

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
		Latitude: 39.78, Longitude: -89.65, DistanceKm: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, []*entity.Address{coincident}, addresses)
}

func TestProximityService_HugeRadiusKeepsStoreOrder(t *testing.T) {
	service, addressRepo := newProximityServiceWithVincenty(t)

	ctx := context.Background()
	stored := []*entity.Address{
		addressAt(1, 51.5074, -0.1278),
		addressAt(2, 48.8566, 2.3522),
		addressAt(3, -37.65282114, 143.92649554),
		addressAt(4, 0.5, 179.7),
	}
	addressRepo.EXPECT().ListAddresses(ctx).Return(stored, nil)

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
		Latitude: 0, Longitude: 0, DistanceKm: math.Inf(1),
	})

	require.NoError(t, err)
	assert.Equal(t, stored, addresses)
}

func TestProximityService_EmptyStore(t *testing.T) {
	service, addressRepo := newProximityServiceWithVincenty(t)

	ctx := context.Background()
	addressRepo.EXPECT().ListAddresses(ctx).Return([]*entity.Address{}, nil)

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{DistanceKm: 100})

	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}

func TestProximityService_SpringfieldToChicago(t *testing.T) {
	service, addressRepo := newProximityServiceWithVincenty(t)

	ctx := context.Background()
	chicago := addressAt(2, 41.8781, -87.6298)
	addressRepo.EXPECT().ListAddresses(ctx).Return([]*entity.Address{chicago}, nil)

	within, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
		Latitude: 39.78, Longitude: -89.65, DistanceKm: 289,
	})
	require.NoError(t, err)
	assert.Equal(t, []*entity.Address{chicago}, within)

	beyond, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
		Latitude: 39.78, Longitude: -89.65, DistanceKm: 288,
	})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestProximityService_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query *usecase.ProximityQuery
	}{
		{name: "nil query", query: nil},
		{name: "latitude out of range", query: &usecase.ProximityQuery{Latitude: 91, DistanceKm: 1}},
		{name: "longitude out of range", query: &usecase.ProximityQuery{Longitude: -181, DistanceKm: 1}},
		{name: "negative radius", query: &usecase.ProximityQuery{DistanceKm: -1}},
		{name: "NaN radius", query: &usecase.ProximityQuery{DistanceKm: math.NaN()}},
		{name: "NaN latitude", query: &usecase.ProximityQuery{Latitude: math.NaN(), DistanceKm: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The store must not be read for a rejected query.
			service, _ := newProximityServiceWithVincenty(t)

			addresses, err := service.FindAddressesWithin(context.Background(), tt.query)

			assert.Nil(t, addresses)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProximityService_RepositoryError(t *testing.T) {
	service, addressRepo := newProximityServiceWithVincenty(t)

	ctx := context.Background()
	addressRepo.EXPECT().ListAddresses(ctx).Return(nil, errors.New("connection reset"))

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{DistanceKm: 1})

	require.Error(t, err)
	assert.Nil(t, addresses)
}

func TestProximityService_UsesCalculator(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	calculator := mockSvc.NewMockDistanceCalculator(t)
	service := NewProximityService(ProximityServiceParams{
		AddressRepo: addressRepo,
		Calculator:  calculator,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	near := addressAt(1, 10, 10)
	far := addressAt(2, 20, 20)
	origin := entity.Coordinate{Lat: 1, Lng: 2}

	addressRepo.EXPECT().ListAddresses(ctx).Return([]*entity.Address{near, far}, nil)
	calculator.EXPECT().DistanceKm(origin, near.Coordinate()).Return(5.0)
	calculator.EXPECT().DistanceKm(origin, far.Coordinate()).Return(5.000001)
	calculator.EXPECT().Name().Return("stub").Maybe()

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{
		Latitude: 1, Longitude: 2, DistanceKm: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []*entity.Address{near}, addresses)
}

func TestProximityService_CanceledContext(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	calculator := mockSvc.NewMockDistanceCalculator(t)
	service := NewProximityService(ProximityServiceParams{
		AddressRepo: addressRepo,
		Calculator:  calculator,
		Logger:      newDiscardLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	addressRepo.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{addressAt(1, 0, 0)}, nil)

	addresses, err := service.FindAddressesWithin(ctx, &usecase.ProximityQuery{DistanceKm: 1})

	assert.Nil(t, addresses)
	assert.ErrorIs(t, err, context.Canceled)
}
