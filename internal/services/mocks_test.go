package services_test

import (
	"context"
	"sync"
	"time"

	"dreamtrip/internal/cache"
	"dreamtrip/internal/events"
	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/internal/providers"
	"dreamtrip/internal/repositories"
	"dreamtrip/pkg/utils"
)

// ---- fixtures --------------------------------------------------------------

func tripRequestFixture() request_models.TripRequest {
	return request_models.TripRequest{
		Origin:      "A",
		Destination: "B",
		Preferences: []string{"food", "history"},
		Duration:    3,
		UserID:      1,
	}
}

func routeFixture() *providers.RouteResult {
	return &providers.RouteResult{
		Origin:      "A",
		Destination: "B",
		Distance:    "120 km",
		Duration:    "2 hours",
		Steps:       []string{"Head north", "Arrive at B"},
	}
}

func weatherFixture() *providers.WeatherResult {
	return &providers.WeatherResult{
		Location: "B",
		Forecast: []providers.ForecastDay{
			{Date: "2026-09-01", TemperatureMin: 18, TemperatureMax: 27, Condition: "sunny", Humidity: 40, WindSpeed: 8},
			{Date: "2026-09-02", TemperatureMin: 17, TemperatureMax: 25, Condition: "cloudy", Humidity: 55, WindSpeed: 12},
			{Date: "2026-09-03", TemperatureMin: 19, TemperatureMax: 28, Condition: "sunny", Humidity: 45, WindSpeed: 6},
		},
	}
}

func poisFixture() *providers.POIResult {
	return &providers.POIResult{
		Location: "B",
		Pois: []providers.POIItem{
			{Name: "Old Town Market", Category: "food", Rating: 4.6, Address: "1 Market St", Latitude: 10.1, Longitude: 106.2, Description: "Street food stalls"},
			{Name: "City Museum", Category: "history", Rating: 4.4, Address: "5 Museum Rd", Latitude: 10.2, Longitude: 106.3, Description: "Local history exhibits"},
		},
	}
}

func summaryFixture() *providers.SummaryResult {
	return &providers.SummaryResult{
		Summary:         "A three day trip from A to B.",
		Recommendations: "Visit the market early.",
		Tips:            "Carry cash.",
		Itinerary: []providers.ItineraryDay{
			{Day: 1, Title: "Arrival", Activities: []string{"Check in", "Old Town Market"}},
		},
	}
}

// ---- provider gateway ------------------------------------------------------

// mockGateway answers with the fixtures above unless a field is overridden.
type mockGateway struct {
	mu sync.Mutex

	fetchRoute   func(ctx context.Context, req providers.RouteRequest) (*providers.RouteResult, error)
	fetchWeather func(ctx context.Context, req providers.WeatherRequest) (*providers.WeatherResult, error)
	fetchPois    func(ctx context.Context, req providers.POIRequest) (*providers.POIResult, error)
	summarize    func(ctx context.Context, req providers.SummaryRequest) (*providers.SummaryResult, error)

	summarizeCalls int
}

func (m *mockGateway) FetchRoute(ctx context.Context, req providers.RouteRequest) (*providers.RouteResult, error) {
	if m.fetchRoute != nil {
		return m.fetchRoute(ctx, req)
	}
	return routeFixture(), nil
}

func (m *mockGateway) FetchWeather(ctx context.Context, req providers.WeatherRequest) (*providers.WeatherResult, error) {
	if m.fetchWeather != nil {
		return m.fetchWeather(ctx, req)
	}
	return weatherFixture(), nil
}

func (m *mockGateway) FetchPois(ctx context.Context, req providers.POIRequest) (*providers.POIResult, error) {
	if m.fetchPois != nil {
		return m.fetchPois(ctx, req)
	}
	return poisFixture(), nil
}

func (m *mockGateway) Summarize(ctx context.Context, req providers.SummaryRequest) (*providers.SummaryResult, error) {
	m.mu.Lock()
	m.summarizeCalls++
	m.mu.Unlock()
	if m.summarize != nil {
		return m.summarize(ctx, req)
	}
	return summaryFixture(), nil
}

func (m *mockGateway) CheckHealth(ctx context.Context, category providers.Category) string {
	return providers.HealthStatusHealthy
}

func (m *mockGateway) summarizeCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summarizeCalls
}

var _ providers.Gateway = (*mockGateway)(nil)

// ---- trip repository -------------------------------------------------------

type mockTripRepo struct {
	mu sync.Mutex

	createErr error
	updateErr error
	getPlan   func(ctx context.Context, tripID int64) (*db_models.TripPlan, error)
	listPlans func(ctx context.Context, userID int64, limit int) ([]db_models.TripPlan, error)

	created       []db_models.TripPlan
	statusUpdates []string
	getCalls      int
}

func (m *mockTripRepo) CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	plan.ID = 42
	plan.CreatedAt = time.Now().UTC()
	m.created = append(m.created, *plan)
	return nil
}

func (m *mockTripRepo) UpdateTripStatus(ctx context.Context, tripID int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statusUpdates = append(m.statusUpdates, status)
	return nil
}

func (m *mockTripRepo) GetTripPlanByID(ctx context.Context, tripID int64) (*db_models.TripPlan, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getPlan != nil {
		return m.getPlan(ctx, tripID)
	}
	return nil, nil
}

func (m *mockTripRepo) GetTripPlansByUser(ctx context.Context, userID int64, limit int) ([]db_models.TripPlan, error) {
	if m.listPlans != nil {
		return m.listPlans(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockTripRepo) lastStatus() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.statusUpdates) == 0 {
		return ""
	}
	return m.statusUpdates[len(m.statusUpdates)-1]
}

func (m *mockTripRepo) statusHistory() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.statusUpdates...)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

// ---- result repository -----------------------------------------------------

type mockResultRepo struct {
	mu sync.Mutex

	saveErr error

	routes    []db_models.Route
	forecasts []db_models.WeatherForecast
	pois      []db_models.POI
	summaries []db_models.AISummary
}

func (m *mockResultRepo) SaveRoute(ctx context.Context, route *db_models.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.routes = append(m.routes, *route)
	return nil
}

func (m *mockResultRepo) SaveWeatherForecasts(ctx context.Context, forecasts []db_models.WeatherForecast) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.forecasts = append(m.forecasts, forecasts...)
	return nil
}

func (m *mockResultRepo) SavePois(ctx context.Context, pois []db_models.POI) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.pois = append(m.pois, pois...)
	return nil
}

func (m *mockResultRepo) SaveSummary(ctx context.Context, summary *db_models.AISummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.summaries = append(m.summaries, *summary)
	return nil
}

var _ repositories.TripResultRepository = (*mockResultRepo)(nil)

// ---- snapshot cache --------------------------------------------------------

type mockTripCache struct {
	mu sync.Mutex

	getErr  error
	setErr  error
	scanErr error

	snapshots map[int64]response_models.TripDetailResponse
	setCalls  int
}

func newMockTripCache() *mockTripCache {
	return &mockTripCache{snapshots: make(map[int64]response_models.TripDetailResponse)}
}

func (m *mockTripCache) GetSnapshot(ctx context.Context, tripID int64) (*response_models.TripDetailResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	snapshot, ok := m.snapshots[tripID]
	if !ok {
		return nil, utils.ErrCacheMiss
	}
	return &snapshot, nil
}

func (m *mockTripCache) SetSnapshot(ctx context.Context, snapshot *response_models.TripDetailResponse, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.snapshots[snapshot.TripID] = *snapshot
	return nil
}

func (m *mockTripCache) ScanSnapshots(ctx context.Context, limit int) ([]response_models.TripDetailResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	out := make([]response_models.TripDetailResponse, 0, len(m.snapshots))
	for _, snapshot := range m.snapshots {
		if len(out) >= limit {
			break
		}
		out = append(out, snapshot)
	}
	return out, nil
}

func (m *mockTripCache) stored(tripID int64) (response_models.TripDetailResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot, ok := m.snapshots[tripID]
	return snapshot, ok
}

var _ cache.TripCache = (*mockTripCache)(nil)

// ---- notifier --------------------------------------------------------------

type recordedEvent struct {
	eventType string
	tripID    int64
	status    string
	reason    string
}

type mockNotifier struct {
	mu sync.Mutex

	publishErr error
	events     []recordedEvent
}

func (m *mockNotifier) TripCreated(ctx context.Context, tripID int64, req request_models.TripRequest) error {
	return m.record(recordedEvent{eventType: events.EventTripCreated, tripID: tripID})
}

func (m *mockNotifier) TripCompleted(ctx context.Context, tripID int64, status string) error {
	return m.record(recordedEvent{eventType: events.EventTripCompleted, tripID: tripID, status: status})
}

func (m *mockNotifier) TripFailed(ctx context.Context, tripID int64, reason string) error {
	return m.record(recordedEvent{eventType: events.EventTripFailed, tripID: tripID, reason: reason})
}

func (m *mockNotifier) record(event recordedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockNotifier) recorded() []recordedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recordedEvent(nil), m.events...)
}

var _ events.Notifier = (*mockNotifier)(nil)
