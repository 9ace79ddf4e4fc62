package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/internal/cache"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/pkg/utils"
)

func newTestCache(t *testing.T) (cache.TripCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return cache.NewRedisTripCache(client), server
}

func snapshotFixture(tripID int64) *response_models.TripDetailResponse {
	return &response_models.TripDetailResponse{
		TripID:      tripID,
		UserID:      1,
		Origin:      "A",
		Destination: "B",
		Preferences: []string{"food", "history"},
		Duration:    3,
		Status:      "completed",
		CreatedAt:   "2026-08-01T10:00:00Z",
		Route: &response_models.RouteSection{
			Origin:      "A",
			Destination: "B",
			Distance:    "120 km",
			Duration:    "2 hours",
			Steps:       []string{"Head north"},
		},
		Weather: []response_models.WeatherDay{
			{Date: "2026-09-01", TemperatureMin: 18, TemperatureMax: 27, Condition: "sunny", Humidity: 40, WindSpeed: 8},
		},
		Pois: []response_models.POISection{
			{Name: "Old Town Market", Category: "food", Rating: 4.6},
		},
		AISummary: &response_models.AISummarySection{
			Summary: "A three day trip.",
			Tips:    "Carry cash.",
			Itinerary: []response_models.ItineraryDay{
				{Day: 1, Title: "Arrival", Activities: []string{"Check in"}},
			},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	want := snapshotFixture(42)
	require.NoError(t, c.SetSnapshot(ctx, want, time.Hour))

	got, err := c.GetSnapshot(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetSnapshot_MissingKeyIsCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.GetSnapshot(context.Background(), 999)
	assert.ErrorIs(t, err, utils.ErrCacheMiss)
}

func TestGetSnapshot_ExpiredKeyIsCacheMiss(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetSnapshot(ctx, snapshotFixture(42), time.Hour))
	server.FastForward(2 * time.Hour)

	_, err := c.GetSnapshot(ctx, 42)
	assert.ErrorIs(t, err, utils.ErrCacheMiss)
}

func TestGetSnapshot_CorruptEntryIsCacheMiss(t *testing.T) {
	c, server := newTestCache(t)

	server.Set("trip_detail:42", "not json")

	_, err := c.GetSnapshot(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrCacheMiss)
}

func TestGetSnapshot_ServerDownIsCacheMiss(t *testing.T) {
	c, server := newTestCache(t)
	server.Close()

	_, err := c.GetSnapshot(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrCacheMiss)
}

func TestScanSnapshots(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, c.SetSnapshot(ctx, snapshotFixture(id), time.Hour))
	}
	// Unrelated keys and corrupt entries are skipped, not fatal.
	server.Set("other:1", "ignored")
	server.Set("trip_detail:999", "not json")

	snapshots, err := c.ScanSnapshots(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, snapshots, 3)

	ids := make(map[int64]bool)
	for _, snapshot := range snapshots {
		ids[snapshot.TripID] = true
	}
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, ids)
}

func TestScanSnapshots_HonorsLimit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, c.SetSnapshot(ctx, snapshotFixture(id), time.Hour))
	}

	snapshots, err := c.ScanSnapshots(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}
