package models

type InhalerUsage struct {
	BaseModel
	UserID     string `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id"`
	UsageCount int    `gorm:"not null;default:0"                    json:"usage_count"`
}
