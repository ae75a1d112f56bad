package models

import "time"

type Alert struct {
	BaseModel
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Message   string    `gorm:"type:varchar(200);not null"      json:"message"`
	Timestamp time.Time `gorm:"not null"                        json:"timestamp"`
}
