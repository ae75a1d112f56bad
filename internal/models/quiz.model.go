package models

type QuizResponse struct {
	BaseModel
	UserID   string `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Question string `gorm:"type:varchar(255);not null"      json:"question"`
	Answer   string `gorm:"type:varchar(255);not null"      json:"answer"`
}

// StoredQuestions is the ordered question set whose answers the backend
// persists. Submitted answers outside this set are ignored.
var StoredQuestions = []string{
	"How often do you experience asthma symptoms?",
	"Which of the following commonly trigger your symptoms?",
	"Do you notice symptoms worsening in specific weather conditions?",
	"Do you live in or frequently visit areas with poor air quality?",
	"Do you experience difficulty breathing at night?",
}
