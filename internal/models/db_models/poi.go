package db_models

import "time"

type POI struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	TripPlanID  int64  `gorm:"index;not null"`
	Name        string `gorm:"size:200;not null"`
	Category    string `gorm:"size:50"`
	Rating      float64
	Address     string `gorm:"type:text"`
	Latitude    float64
	Longitude   float64
	Description string `gorm:"type:text"`
	PriceLevel  int
	CreatedAt   time.Time
}
