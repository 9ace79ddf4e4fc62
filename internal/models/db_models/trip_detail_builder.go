package db_models

import (
	"encoding/json"
	"log"
	"time"

	"dreamtrip/internal/models/response_models"
)

// BuildTripDetailResponse flattens a fully preloaded TripPlan into the
// snapshot shape served by the read path.
func BuildTripDetailResponse(plan *TripPlan) *response_models.TripDetailResponse {
	out := &response_models.TripDetailResponse{
		TripID:      plan.ID,
		UserID:      plan.UserID,
		Origin:      plan.Origin,
		Destination: plan.Destination,
		Preferences: plan.Preferences,
		Duration:    plan.Duration,
		Status:      plan.Status,
		Weather:     []response_models.WeatherDay{},
		Pois:        []response_models.POISection{},
	}

	if !plan.CreatedAt.IsZero() {
		out.CreatedAt = plan.CreatedAt.UTC().Format(time.RFC3339)
	}

	if plan.Route != nil {
		out.Route = &response_models.RouteSection{
			Origin:      plan.Route.Origin,
			Destination: plan.Route.Destination,
			Distance:    plan.Route.Distance,
			Duration:    plan.Route.Duration,
			Steps:       plan.Route.Steps,
		}
	}

	for _, f := range plan.Forecasts {
		out.Weather = append(out.Weather, response_models.WeatherDay{
			Date:           f.Date,
			TemperatureMin: f.TemperatureMin,
			TemperatureMax: f.TemperatureMax,
			Condition:      f.Condition,
			Humidity:       f.Humidity,
			WindSpeed:      f.WindSpeed,
		})
	}

	for _, p := range plan.Pois {
		out.Pois = append(out.Pois, response_models.POISection{
			Name:        p.Name,
			Category:    p.Category,
			Rating:      p.Rating,
			Address:     p.Address,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Description: p.Description,
			PriceLevel:  p.PriceLevel,
		})
	}

	if plan.Summary != nil {
		section := &response_models.AISummarySection{
			Summary:         plan.Summary.Summary,
			Recommendations: plan.Summary.Recommendations,
			Tips:            plan.Summary.Tips,
		}
		if len(plan.Summary.Itinerary) > 0 {
			if err := json.Unmarshal([]byte(plan.Summary.Itinerary), &section.Itinerary); err != nil {
				log.Printf("Skipping malformed itinerary for trip %d: %v", plan.ID, err)
			}
		}
		out.AISummary = section
	}

	return out
}
