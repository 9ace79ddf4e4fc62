package db_models

import (
	"time"

	"github.com/lib/pq"
)

const (
	TripStatusProcessing = "processing"
	TripStatusCompleted  = "completed"
	TripStatusPartial    = "partial"
	TripStatusFailed     = "failed"
)

type TripPlan struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	UserID      int64          `gorm:"index;default:1"`
	Origin      string         `gorm:"size:100;not null"`
	Destination string         `gorm:"size:100;not null"`
	Preferences pq.StringArray `gorm:"type:text[];not null"`
	Duration    int            `gorm:"not null"`
	Status      string         `gorm:"size:20;default:processing"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Route     *Route            `gorm:"foreignKey:TripPlanID"`
	Forecasts []WeatherForecast `gorm:"foreignKey:TripPlanID"`
	Pois      []POI             `gorm:"foreignKey:TripPlanID"`
	Summary   *AISummary        `gorm:"foreignKey:TripPlanID"`
}
