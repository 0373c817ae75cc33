package dto

import "github.com/destination-service/internal/domain"

// CreateDestinationRequest - запрос на создание дестинации
type CreateDestinationRequest struct {
	City string `json:"city" validate:"required"`
}

// UpdateDestinationRequest - частичное обновление дестинации.
// Nil-поля не трогаются.
type UpdateDestinationRequest struct {
	DisplayCity      *string         `json:"displayCity"`
	UserNote         *string         `json:"userNote"`
	PointsOfInterest *[]domain.Place `json:"pointsOfInterest"`
	Restaurants      *[]domain.Place `json:"restaurants"`
}

// CreateCustomLocationRequest - запрос на создание пользовательской метки.
// Все три поля обязательны; lat/lon указатели, чтобы нулевые координаты
// отличались от отсутствующих.
type CreateCustomLocationRequest struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required"`
	Lon  *float64 `json:"lon" validate:"required"`
}

// UpdateCustomLocationRequest - частичное обновление метки
type UpdateCustomLocationRequest struct {
	Name *string  `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}
