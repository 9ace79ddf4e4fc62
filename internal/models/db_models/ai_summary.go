package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type AISummary struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	TripPlanID      int64  `gorm:"index;not null"`
	Summary         string `gorm:"type:text;not null"`
	Recommendations string `gorm:"type:text"`
	Tips            string `gorm:"type:text"`
	// Optional day-by-day plan as returned by the summarizer.
	Itinerary datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}
