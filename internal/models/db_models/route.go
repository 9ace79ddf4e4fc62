package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Route struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	TripPlanID  int64          `gorm:"index;not null"`
	Origin      string         `gorm:"size:100;not null"`
	Destination string         `gorm:"size:100;not null"`
	Distance    string         `gorm:"size:50"`
	Duration    string         `gorm:"size:50"`
	Steps       pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time
}
