package providers

type Category string

const (
	CategoryRoute   Category = "route"
	CategoryWeather Category = "weather"
	CategoryPOI     Category = "poi"
	CategoryAI      Category = "ai"
)

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type RouteResult struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Distance    string   `json:"distance"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
}

type WeatherRequest struct {
	Location string `json:"location"`
	Duration int    `json:"duration"`
}

type ForecastDay struct {
	Date           string  `json:"date"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
	Condition      string  `json:"condition"`
	Humidity       int     `json:"humidity"`
	WindSpeed      float64 `json:"wind_speed"`
}

type WeatherResult struct {
	Location string        `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
}

type POIRequest struct {
	Location    string   `json:"location"`
	Preferences []string `json:"preferences"`
	Duration    int      `json:"duration"`
}

type POIItem struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	PriceLevel  int     `json:"price_level,omitempty"`
}

type POIResult struct {
	Location string    `json:"location"`
	Pois     []POIItem `json:"pois"`
}

type SummaryRequest struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Preferences []string      `json:"preferences"`
	Duration    int           `json:"duration"`
	Route       *RouteResult  `json:"route,omitempty"`
	Weather     []ForecastDay `json:"weather"`
	Pois        []POIItem     `json:"pois"`
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type SummaryResult struct {
	Summary         string         `json:"summary"`
	Recommendations string         `json:"recommendations"`
	Tips            string         `json:"tips"`
	Itinerary       []ItineraryDay `json:"itinerary,omitempty"`
}
