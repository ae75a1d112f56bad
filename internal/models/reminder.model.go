package models

type ReminderSchedule struct {
	BaseModel
	RemindMe bool     `gorm:"not null"                    json:"remindMe"`
	Times    []string `gorm:"serializer:json;type:text"   json:"times"` // 12-hour "H:MM AM|PM" strings
}
