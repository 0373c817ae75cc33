package repository

import (
	"context"

	"github.com/destination-service/internal/domain"
)

// Geocoder разрешает свободный текст в координаты и страну.
type Geocoder interface {
	// Forward возвращает первую найденную точку или ErrLocationNotFound
	Forward(ctx context.Context, query string) (*domain.GeoPoint, error)
}

// WeatherProvider возвращает текущую погоду для координат.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error)
}

// PlaceProvider возвращает ближайшие точки интереса для координат.
type PlaceProvider interface {
	// Nearby возвращает до 5 мест в радиусе 10 км
	Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error)
}

// RestaurantProvider возвращает ближайшие рестораны для координат.
type RestaurantProvider interface {
	// Nearby возвращает до 5 ресторанов в радиусе 10 км
	Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error)
}
