package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"dreamtrip/internal/cache"
	"dreamtrip/internal/events"
	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/internal/providers"
	"dreamtrip/internal/repositories"
	"dreamtrip/pkg/memcache"
)

type TripProcessingServiceInterface interface {
	ProcessTripPlan(ctx context.Context, tripID int64, req request_models.TripRequest)
}

func NewTripProcessingService(
	gateway providers.Gateway,
	tripRepo repositories.TripRepository,
	resultRepo repositories.TripResultRepository,
	tripCache cache.TripCache,
	notifier events.Notifier,
	inflight *memcache.InflightGuard,
) TripProcessingServiceInterface {
	return &TripProcessingService{
		gateway:    gateway,
		tripRepo:   tripRepo,
		resultRepo: resultRepo,
		tripCache:  tripCache,
		notifier:   notifier,
		inflight:   inflight,
	}
}

type TripProcessingService struct {
	gateway    providers.Gateway
	tripRepo   repositories.TripRepository
	resultRepo repositories.TripResultRepository
	tripCache  cache.TripCache
	notifier   events.Notifier
	inflight   *memcache.InflightGuard
}

// ProcessTripPlan runs the detached pass for one trip: fan out to the
// route, weather and POI providers, classify the outcome, bolt on the AI
// summary best-effort, then cache the snapshot and emit the terminal event.
// Nothing here propagates to a caller; every failure becomes a status
// transition or a logged warning.
func (s *TripProcessingService) ProcessTripPlan(ctx context.Context, tripID int64, req request_models.TripRequest) {
	if !s.inflight.TryAcquire(tripID) {
		log.Printf("Trip %d is already being processed, skipping duplicate run", tripID)
		return
	}
	defer s.inflight.Release(tripID)

	log.Printf("Starting background processing for trip %d", tripID)

	if err := s.tripRepo.UpdateTripStatus(ctx, tripID, db_models.TripStatusProcessing); err != nil {
		log.Printf("Failed to mark trip %d processing: %v", tripID, err)
	}

	var (
		wg sync.WaitGroup

		route    *providers.RouteResult
		routeErr error

		weather    *providers.WeatherResult
		weatherErr error

		pois    *providers.POIResult
		poisErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		route, routeErr = s.fetchRoute(ctx, tripID, req)
	}()
	go func() {
		defer wg.Done()
		weather, weatherErr = s.fetchWeather(ctx, tripID, req)
	}()
	go func() {
		defer wg.Done()
		pois, poisErr = s.fetchPois(ctx, tripID, req)
	}()
	wg.Wait()

	var failures []string
	for name, err := range map[string]error{
		"route":   routeErr,
		"weather": weatherErr,
		"poi":     poisErr,
	} {
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(failures) == 3 {
		reason := strings.Join(failures, "; ")
		log.Printf("All providers failed for trip %d: %s", tripID, reason)
		if err := s.tripRepo.UpdateTripStatus(ctx, tripID, db_models.TripStatusFailed); err != nil {
			log.Printf("Failed to mark trip %d failed: %v", tripID, err)
		}
		if err := s.notifier.TripFailed(ctx, tripID, reason); err != nil {
			log.Printf("Failed to publish trip_failed for trip %d: %v", tripID, err)
		}
		return
	}

	status := db_models.TripStatusCompleted
	if len(failures) > 0 {
		status = db_models.TripStatusPartial
		log.Printf("Some providers failed for trip %d: %s", tripID, strings.Join(failures, "; "))
	}
	if err := s.tripRepo.UpdateTripStatus(ctx, tripID, status); err != nil {
		log.Printf("Failed to update trip %d status to %s: %v", tripID, status, err)
	}

	// The summary works off whatever subset of data arrived; its failure
	// never downgrades the status decided above.
	summary := s.generateSummary(ctx, tripID, req, route, weather, pois)

	snapshot := buildSnapshot(tripID, req, status, route, weather, pois, summary)
	if err := s.tripCache.SetSnapshot(ctx, snapshot, snapshotTTL); err != nil {
		log.Printf("Failed to cache snapshot for trip %d: %v", tripID, err)
	}

	if err := s.notifier.TripCompleted(ctx, tripID, status); err != nil {
		log.Printf("Failed to publish trip_completed for trip %d: %v", tripID, err)
	}

	log.Printf("Finished processing trip %d with status %s", tripID, status)
}

func (s *TripProcessingService) fetchRoute(ctx context.Context, tripID int64, req request_models.TripRequest) (*providers.RouteResult, error) {
	result, err := s.gateway.FetchRoute(ctx, providers.RouteRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		log.Printf("Error getting route info for trip %d: %v", tripID, err)
		return nil, err
	}

	if err := s.resultRepo.SaveRoute(ctx, &db_models.Route{
		TripPlanID:  tripID,
		Origin:      result.Origin,
		Destination: result.Destination,
		Distance:    result.Distance,
		Duration:    result.Duration,
		Steps:       result.Steps,
	}); err != nil {
		log.Printf("Failed to persist route for trip %d: %v", tripID, err)
	}
	return result, nil
}

func (s *TripProcessingService) fetchWeather(ctx context.Context, tripID int64, req request_models.TripRequest) (*providers.WeatherResult, error) {
	result, err := s.gateway.FetchWeather(ctx, providers.WeatherRequest{
		Location: req.Destination,
		Duration: req.Duration,
	})
	if err != nil {
		log.Printf("Error getting weather info for trip %d: %v", tripID, err)
		return nil, err
	}

	forecasts := make([]db_models.WeatherForecast, 0, len(result.Forecast))
	for _, day := range result.Forecast {
		forecasts = append(forecasts, db_models.WeatherForecast{
			TripPlanID:     tripID,
			Location:       req.Destination,
			Date:           day.Date,
			TemperatureMin: day.TemperatureMin,
			TemperatureMax: day.TemperatureMax,
			Condition:      day.Condition,
			Humidity:       day.Humidity,
			WindSpeed:      day.WindSpeed,
		})
	}
	if err := s.resultRepo.SaveWeatherForecasts(ctx, forecasts); err != nil {
		log.Printf("Failed to persist weather for trip %d: %v", tripID, err)
	}
	return result, nil
}

func (s *TripProcessingService) fetchPois(ctx context.Context, tripID int64, req request_models.TripRequest) (*providers.POIResult, error) {
	result, err := s.gateway.FetchPois(ctx, providers.POIRequest{
		Location:    req.Destination,
		Preferences: req.Preferences,
		Duration:    req.Duration,
	})
	if err != nil {
		log.Printf("Error getting POI recommendations for trip %d: %v", tripID, err)
		return nil, err
	}

	rows := make([]db_models.POI, 0, len(result.Pois))
	for _, item := range result.Pois {
		rows = append(rows, db_models.POI{
			TripPlanID:  tripID,
			Name:        item.Name,
			Category:    item.Category,
			Rating:      item.Rating,
			Address:     item.Address,
			Latitude:    item.Latitude,
			Longitude:   item.Longitude,
			Description: item.Description,
			PriceLevel:  item.PriceLevel,
		})
	}
	if err := s.resultRepo.SavePois(ctx, rows); err != nil {
		log.Printf("Failed to persist POIs for trip %d: %v", tripID, err)
	}
	return result, nil
}

func (s *TripProcessingService) generateSummary(
	ctx context.Context,
	tripID int64,
	req request_models.TripRequest,
	route *providers.RouteResult,
	weather *providers.WeatherResult,
	pois *providers.POIResult,
) *providers.SummaryResult {
	summaryReq := providers.SummaryRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Preferences: req.Preferences,
		Duration:    req.Duration,
		Route:       route,
		Weather:     []providers.ForecastDay{},
		Pois:        []providers.POIItem{},
	}
	if weather != nil {
		summaryReq.Weather = weather.Forecast
	}
	if pois != nil {
		summaryReq.Pois = pois.Pois
	}

	result, err := s.gateway.Summarize(ctx, summaryReq)
	if err != nil {
		log.Printf("AI summary generation failed for trip %d: %v", tripID, err)
		return nil
	}

	row := &db_models.AISummary{
		TripPlanID:      tripID,
		Summary:         result.Summary,
		Recommendations: result.Recommendations,
		Tips:            result.Tips,
	}
	if len(result.Itinerary) > 0 {
		if raw, err := json.Marshal(result.Itinerary); err == nil {
			row.Itinerary = datatypes.JSON(raw)
		}
	}
	if err := s.resultRepo.SaveSummary(ctx, row); err != nil {
		log.Printf("Failed to persist AI summary for trip %d: %v", tripID, err)
	}

	return result
}

func buildSnapshot(
	tripID int64,
	req request_models.TripRequest,
	status string,
	route *providers.RouteResult,
	weather *providers.WeatherResult,
	pois *providers.POIResult,
	summary *providers.SummaryResult,
) *response_models.TripDetailResponse {
	snapshot := &response_models.TripDetailResponse{
		TripID:      tripID,
		UserID:      req.UserID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Preferences: req.Preferences,
		Duration:    req.Duration,
		Status:      status,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Weather:     []response_models.WeatherDay{},
		Pois:        []response_models.POISection{},
	}

	if route != nil {
		snapshot.Route = &response_models.RouteSection{
			Origin:      route.Origin,
			Destination: route.Destination,
			Distance:    route.Distance,
			Duration:    route.Duration,
			Steps:       route.Steps,
		}
	}

	if weather != nil {
		for _, day := range weather.Forecast {
			snapshot.Weather = append(snapshot.Weather, response_models.WeatherDay{
				Date:           day.Date,
				TemperatureMin: day.TemperatureMin,
				TemperatureMax: day.TemperatureMax,
				Condition:      day.Condition,
				Humidity:       day.Humidity,
				WindSpeed:      day.WindSpeed,
			})
		}
	}

	if pois != nil {
		for _, item := range pois.Pois {
			snapshot.Pois = append(snapshot.Pois, response_models.POISection{
				Name:        item.Name,
				Category:    item.Category,
				Rating:      item.Rating,
				Address:     item.Address,
				Latitude:    item.Latitude,
				Longitude:   item.Longitude,
				Description: item.Description,
				PriceLevel:  item.PriceLevel,
			})
		}
	}

	if summary != nil {
		section := &response_models.AISummarySection{
			Summary:         summary.Summary,
			Recommendations: summary.Recommendations,
			Tips:            summary.Tips,
		}
		for _, day := range summary.Itinerary {
			section.Itinerary = append(section.Itinerary, response_models.ItineraryDay{
				Day:        day.Day,
				Title:      day.Title,
				Activities: day.Activities,
			})
		}
		snapshot.AISummary = section
	}

	return snapshot
}
