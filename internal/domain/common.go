package domain

// GeoPoint - результат прямого геокодирования свободного текста.
type GeoPoint struct {
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
	Country string  `json:"country"`
}
