package models

import "time"

type SensorData struct {
	BaseModel
	UserID      string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Timestamp   time.Time `gorm:"not null"                        json:"timestamp"`
	AirQuality  int       `gorm:"not null"                        json:"air_quality"` // AQI
	PM25        float64   `gorm:"not null"                        json:"pm25"`
	SO2Level    float64   `gorm:"not null"                        json:"so2_level"`
	NO2Level    float64   `gorm:"not null"                        json:"no2_level"`
	CO2Level    float64   `gorm:"not null"                        json:"co2_level"`
	Humidity    float64   `gorm:"not null"                        json:"humidity"`
	Temperature float64   `gorm:"not null"                        json:"temperature"`
}
