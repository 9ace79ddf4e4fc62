package services

import (
	"context"
	"log"
	"strings"
	"time"

	"dreamtrip/internal/cache"
	"dreamtrip/internal/events"
	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/internal/repositories"
	"dreamtrip/pkg/utils"
)

// snapshotTTL bounds how long a cached trip snapshot is served before the
// durable store is consulted again.
const snapshotTTL = time.Hour

type TripServiceInterface interface {
	CreateTripPlan(ctx context.Context, req request_models.TripRequest) (*response_models.TripCreatedResponse, error)
	GetTripDetail(ctx context.Context, tripID int64) (*response_models.TripDetailResponse, error)
	GetUserTrips(ctx context.Context, userID int64, limit int) ([]response_models.TripSummaryResponse, error)
}

func NewTripService(
	tripRepo repositories.TripRepository,
	tripCache cache.TripCache,
	notifier events.Notifier,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		tripCache: tripCache,
		notifier:  notifier,
	}
}

type TripService struct {
	tripRepo  repositories.TripRepository
	tripCache cache.TripCache
	notifier  events.Notifier
}

// CreateTripPlan persists a new plan with status "processing" and returns
// its id right away; the provider fan-out happens in a detached pass. When
// the durable store is down the caller still gets a usable timestamp-derived
// id so processing can proceed cache-only.
func (s *TripService) CreateTripPlan(ctx context.Context, req request_models.TripRequest) (*response_models.TripCreatedResponse, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" || req.Duration <= 0 {
		return nil, utils.ErrInvalidInput
	}
	req = req.Normalized()

	plan := &db_models.TripPlan{
		UserID:      req.UserID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Preferences: req.Preferences,
		Duration:    req.Duration,
		Status:      db_models.TripStatusProcessing,
	}

	tripID := int64(0)
	if err := s.tripRepo.CreateTripPlan(ctx, plan); err != nil {
		// Degraded mode: keep going with a temporary id.
		tripID = time.Now().Unix()
		log.Printf("Database unavailable, using temporary trip id %d: %v", tripID, err)
	} else {
		tripID = plan.ID
	}

	if err := s.notifier.TripCreated(ctx, tripID, req); err != nil {
		log.Printf("Failed to publish trip_created for trip %d: %v", tripID, err)
	}

	log.Printf("Created trip plan %d for %s to %s", tripID, req.Origin, req.Destination)

	return &response_models.TripCreatedResponse{
		TripID: tripID,
		Status: db_models.TripStatusProcessing,
	}, nil
}

// GetTripDetail serves the snapshot from cache when present; otherwise it
// rebuilds one from the durable store and writes it back for the next read.
func (s *TripService) GetTripDetail(ctx context.Context, tripID int64) (*response_models.TripDetailResponse, error) {
	if snapshot, err := s.tripCache.GetSnapshot(ctx, tripID); err == nil {
		log.Printf("Trip %d served from cache", tripID)
		return snapshot, nil
	}

	plan, err := s.tripRepo.GetTripPlanByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrTripNotFound
	}

	snapshot := db_models.BuildTripDetailResponse(plan)

	if err := s.tripCache.SetSnapshot(ctx, snapshot, snapshotTTL); err != nil {
		log.Printf("Failed to cache trip %d after durable read: %v", tripID, err)
	}

	return snapshot, nil
}

// GetUserTrips pages the user's plans newest-first. When the durable store
// is unavailable or empty it falls back to scanning cached snapshots; that
// fallback cannot filter by user precisely, which is an accepted weak
// guarantee of the degraded path.
func (s *TripService) GetUserTrips(ctx context.Context, userID int64, limit int) ([]response_models.TripSummaryResponse, error) {
	if limit <= 0 {
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.tripRepo.GetTripPlansByUser(ctx, userID, limit)
	if err == nil && len(plans) > 0 {
		out := make([]response_models.TripSummaryResponse, 0, len(plans))
		for _, plan := range plans {
			out = append(out, response_models.TripSummaryResponse{
				TripID:      plan.ID,
				Origin:      plan.Origin,
				Destination: plan.Destination,
				Status:      plan.Status,
				CreatedAt:   plan.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return out, nil
	}
	if err != nil {
		log.Printf("Durable store unavailable for user %d trips, scanning cache: %v", userID, err)
	}

	snapshots, err := s.tripCache.ScanSnapshots(ctx, limit)
	if err != nil {
		log.Printf("Cache scan fallback failed for user %d: %v", userID, err)
		return []response_models.TripSummaryResponse{}, nil
	}

	out := make([]response_models.TripSummaryResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		out = append(out, response_models.TripSummaryResponse{
			TripID:      snapshot.TripID,
			Origin:      snapshot.Origin,
			Destination: snapshot.Destination,
			Status:      snapshot.Status,
			CreatedAt:   snapshot.CreatedAt,
		})
	}
	return out, nil
}
