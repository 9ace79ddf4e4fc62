package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dreamtrip/internal/models/db_models"
)

type TripRepository interface {
	CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error
	UpdateTripStatus(ctx context.Context, tripID int64, status string) error
	GetTripPlanByID(ctx context.Context, tripID int64) (*db_models.TripPlan, error)
	GetTripPlansByUser(ctx context.Context, userID int64, limit int) ([]db_models.TripPlan, error)
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

type tripRepository struct {
	db *gorm.DB
}

func (r *tripRepository) CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(plan).Error
	})
}

func (r *tripRepository) UpdateTripStatus(ctx context.Context, tripID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.TripPlan{}).
		Where("id = ?", tripID).
		Update("status", status).Error
}

// GetTripPlanByID loads the plan with every provider section joined in.
// Returns (nil, nil) when the trip does not exist.
func (r *tripRepository) GetTripPlanByID(ctx context.Context, tripID int64) (*db_models.TripPlan, error) {
	var plan db_models.TripPlan
	err := r.db.WithContext(ctx).
		Preload("Route").
		Preload("Forecasts", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Pois").
		Preload("Summary").
		First(&plan, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *tripRepository) GetTripPlansByUser(ctx context.Context, userID int64, limit int) ([]db_models.TripPlan, error) {
	var plans []db_models.TripPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
