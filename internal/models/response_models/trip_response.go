package response_models

// TripCreatedResponse is returned by the create endpoint before any
// provider call has run.
type TripCreatedResponse struct {
	TripID int64  `json:"trip_id"`
	Status string `json:"status"`
}

type RouteSection struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Distance    string   `json:"distance"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
}

type WeatherDay struct {
	Date           string  `json:"date"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
	Condition      string  `json:"condition"`
	Humidity       int     `json:"humidity"`
	WindSpeed      float64 `json:"wind_speed"`
}

type POISection struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	PriceLevel  int     `json:"price_level,omitempty"`
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type AISummarySection struct {
	Summary         string         `json:"summary"`
	Recommendations string         `json:"recommendations"`
	Tips            string         `json:"tips"`
	Itinerary       []ItineraryDay `json:"itinerary,omitempty"`
}

// TripDetailResponse is the denormalized trip snapshot: the unit written to
// the cache and returned by the read path. Its Status always reflects the
// terminal outcome of the processing pass that produced it.
type TripDetailResponse struct {
	TripID      int64             `json:"trip_id"`
	UserID      int64             `json:"user_id"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Preferences []string          `json:"preferences"`
	Duration    int               `json:"duration"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at,omitempty"`
	Route       *RouteSection     `json:"route,omitempty"`
	Weather     []WeatherDay      `json:"weather"`
	Pois        []POISection      `json:"pois"`
	AISummary   *AISummarySection `json:"ai_summary,omitempty"`
}

// TripSummaryResponse is one row of the user trip listing.
type TripSummaryResponse struct {
	TripID      int64  `json:"trip_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}
