package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/destination-service/internal/domain"
)

// MockDestinationRepository is a mock of DestinationRepository
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) Insert(ctx context.Context, dest *domain.Destination) error {
	args := m.Called(ctx, dest)
	return args.Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, id string, upd domain.DestinationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomLocationRepository is a mock of CustomLocationRepository
type MockCustomLocationRepository struct {
	mock.Mock
}

func (m *MockCustomLocationRepository) List(ctx context.Context) ([]domain.CustomLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomLocation), args.Error(1)
}

func (m *MockCustomLocationRepository) GetByID(ctx context.Context, id string) (*domain.CustomLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomLocation), args.Error(1)
}

func (m *MockCustomLocationRepository) Insert(ctx context.Context, loc *domain.CustomLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockCustomLocationRepository) Update(ctx context.Context, id string, upd domain.CustomLocationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockCustomLocationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockCacheRepository) SetDestination(ctx context.Context, dest *domain.Destination, ttl time.Duration) error {
	args := m.Called(ctx, dest, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteDestination(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Forward(ctx context.Context, query string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}

// MockWeatherProvider is a mock of WeatherProvider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeatherSnapshot), args.Error(1)
}

// MockPlaceProvider is a mock of PlaceProvider
type MockPlaceProvider struct {
	mock.Mock
}

func (m *MockPlaceProvider) Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

// MockRestaurantProvider is a mock of RestaurantProvider
type MockRestaurantProvider struct {
	mock.Mock
}

func (m *MockRestaurantProvider) Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}
