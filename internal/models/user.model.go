package models

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type User struct {
	BaseUUIDModel
	Name              string             `gorm:"type:varchar(100);not null"       json:"name"`
	Age               int                `gorm:"not null"                         json:"age"`
	Gender            string             `gorm:"type:varchar(10);not null"        json:"gender"` // 'Male', 'Female', 'Other'
	Mobile            string             `gorm:"type:varchar(15);unique;not null" json:"mobile"`
	MedicalHistory    string             `gorm:"type:text"                        json:"medicalHistory"`
	EmergencyContacts []EmergencyContact `gorm:"foreignKey:UserID"                json:"emergencyContacts"`
}

type EmergencyContact struct {
	BaseModel
	UserID string `gorm:"type:varchar(64);not null;index" json:"userId"`
	Name   string `gorm:"type:varchar(100);not null"      json:"name"`
	Phone  string `gorm:"type:varchar(15);not null"       json:"phone"`
}
