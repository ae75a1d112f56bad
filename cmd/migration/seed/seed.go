package seed

import (
	"time"

	"hridayavayu/config"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"gorm.io/gorm"
)

// Seed loads development fixtures: one profile with a stored quiz pass and
// a few sensor readings, enough to exercise the prediction flow locally.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	user := User{
		Name:           "Asha Verma",
		Age:            29,
		Gender:         GenderFemale,
		Mobile:         "9876543210",
		MedicalHistory: "Mild asthma since childhood",
		EmergencyContacts: []EmergencyContact{
			{Name: "Ravi Verma", Phone: "9876500000"},
		},
	}

	var existing User
	if err := db.First(&existing, "mobile = ?", user.Mobile).Error; err == nil {
		log.Info("Seed user already exists", "mobile", user.Mobile)
		return nil
	}

	if err := db.Create(&user).Error; err != nil {
		return log.Err("failed to seed user", err, "mobile", user.Mobile)
	}

	answers := []string{
		"1-2 times a month",
		"Dust",
		"Cold",
		"Occasionally",
		"Rarely",
	}
	for i, question := range StoredQuestions {
		response := QuizResponse{
			UserID:   user.ID,
			Question: question,
			Answer:   answers[i],
		}
		if err := db.Create(&response).Error; err != nil {
			return log.Err("failed to seed quiz response", err, "question", question)
		}
	}

	reading := SensorData{
		UserID:      user.ID,
		Timestamp:   time.Now(),
		AirQuality:  112,
		PM25:        38.4,
		SO2Level:    6.1,
		NO2Level:    21.7,
		CO2Level:    415.0,
		Humidity:    68.0,
		Temperature: 31.5,
	}
	if err := db.Create(&reading).Error; err != nil {
		return log.Err("failed to seed sensor data", err)
	}

	log.Info("Seed complete", "userID", user.ID)
	return nil
}
