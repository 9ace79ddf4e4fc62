package db_models

import "time"

type WeatherForecast struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	TripPlanID     int64  `gorm:"index;not null"`
	Location       string `gorm:"size:100;not null"`
	Date           string `gorm:"size:20;not null"`
	TemperatureMin float64
	TemperatureMax float64
	Condition      string `gorm:"size:50"`
	Humidity       int
	WindSpeed      float64
	CreatedAt      time.Time
}
