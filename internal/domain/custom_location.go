package domain

// CustomLocation - пользовательская метка на карте. Все поля, кроме id,
// задаются клиентом.
type CustomLocation struct {
	ID   string  `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}

// CustomLocationUpdate - частичное обновление метки. Nil-поля не трогаются.
type CustomLocationUpdate struct {
	Name *string
	Lat  *float64
	Lon  *float64
}

// IsEmpty сообщает, что обновление не содержит ни одного поля.
func (u CustomLocationUpdate) IsEmpty() bool {
	return u.Name == nil && u.Lat == nil && u.Lon == nil
}
