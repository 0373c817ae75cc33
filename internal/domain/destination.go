package domain

// Place - именованная точка, возвращаемая провайдерами POI и ресторанов
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// WeatherSnapshot - снимок текущей погоды, сделанный один раз при создании
// дестинации и никогда не обновляемый. Поля, которые провайдер не вернул,
// остаются нулевыми и участвуют в расчёте благоприятности как 0.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Windspeed   float64 `json:"windspeed"`
}

// Destination агрегирует геокодированные данные, погоду, POI и рестораны
// для запрошенного города.
type Destination struct {
	ID               string          `json:"id" db:"id"`
	City             string          `json:"city" db:"city"`
	DisplayCity      string          `json:"displayCity" db:"display_city"`
	Country          string          `json:"country" db:"country"`
	Lat              float64         `json:"lat" db:"lat"`
	Lon              float64         `json:"lon" db:"lon"`
	Weather          WeatherSnapshot `json:"weather" db:"weather"`
	PointsOfInterest []Place         `json:"pointsOfInterest" db:"points_of_interest"`
	Restaurants      []Place         `json:"restaurants" db:"restaurants"`
	WeatherFavorable bool            `json:"weatherFavorable" db:"weather_favorable"`
	UserNote         string          `json:"userNote" db:"user_note"`
}

// Имена списковых полей дестинации, адресуемых в API по имени.
const (
	FieldPointsOfInterest = "pointsOfInterest"
	FieldRestaurants      = "restaurants"
)

// ListField возвращает списковое поле по его API-имени.
func (d *Destination) ListField(name string) ([]Place, bool) {
	switch name {
	case FieldPointsOfInterest:
		return d.PointsOfInterest, true
	case FieldRestaurants:
		return d.Restaurants, true
	default:
		return nil, false
	}
}

// Пороговые значения благоприятной погоды.
const (
	favorableMinTemperature = 15.0
	favorableMaxTemperature = 30.0
	favorableMaxWindspeed   = 30.0
)

// FavorableWeather вычисляет флаг благоприятности: температура в диапазоне
// [15, 30] и скорость ветра строго меньше 30.
func FavorableWeather(w WeatherSnapshot) bool {
	return w.Temperature >= favorableMinTemperature &&
		w.Temperature <= favorableMaxTemperature &&
		w.Windspeed < favorableMaxWindspeed
}

// DestinationUpdate - частичное обновление дестинации. Nil-поля не трогаются.
type DestinationUpdate struct {
	DisplayCity      *string
	UserNote         *string
	PointsOfInterest *[]Place
	Restaurants      *[]Place
}

// IsEmpty сообщает, что обновление не содержит ни одного поля.
func (u DestinationUpdate) IsEmpty() bool {
	return u.DisplayCity == nil && u.UserNote == nil &&
		u.PointsOfInterest == nil && u.Restaurants == nil
}
