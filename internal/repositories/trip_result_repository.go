package repositories

import (
	"context"

	"gorm.io/gorm"

	"dreamtrip/internal/models/db_models"
)

// TripResultRepository persists the per-provider sections fetched during
// background processing. Every save is a transactional unit; callers treat a
// returned error as "not persisted" and carry on.
type TripResultRepository interface {
	SaveRoute(ctx context.Context, route *db_models.Route) error
	SaveWeatherForecasts(ctx context.Context, forecasts []db_models.WeatherForecast) error
	SavePois(ctx context.Context, pois []db_models.POI) error
	SaveSummary(ctx context.Context, summary *db_models.AISummary) error
}

func NewTripResultRepository(db *gorm.DB) TripResultRepository {
	return &tripResultRepository{db: db}
}

type tripResultRepository struct {
	db *gorm.DB
}

func (r *tripResultRepository) SaveRoute(ctx context.Context, route *db_models.Route) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(route).Error
	})
}

func (r *tripResultRepository) SaveWeatherForecasts(ctx context.Context, forecasts []db_models.WeatherForecast) error {
	if len(forecasts) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&forecasts).Error
	})
}

func (r *tripResultRepository) SavePois(ctx context.Context, pois []db_models.POI) error {
	if len(pois) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&pois).Error
	})
}

func (r *tripResultRepository) SaveSummary(ctx context.Context, summary *db_models.AISummary) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(summary).Error
	})
}
