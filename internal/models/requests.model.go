package models

// Wire shapes shared by the Fiber handlers and the client package. Field
// names follow the JSON the original mobile front-end sends.

type EmergencyContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SaveProfileRequest struct {
	Name              string                    `json:"name"`
	Age               int                       `json:"age"`
	Gender            string                    `json:"gender"`
	Mobile            string                    `json:"mobile"`
	MedicalHistory    string                    `json:"medicalHistory"`
	EmergencyContacts []EmergencyContactRequest `json:"emergencyContacts"`
}

type SaveProfileResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type SubmitQuizRequest struct {
	UserID  string            `json:"user_id"`
	Answers map[string]string `json:"answers"`
}

type QuizResponsesResponse struct {
	QuizResponses []QuizAnswer `json:"quiz_responses"`
}

type QuizAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UploadSensorDataRequest struct {
	UserID      string   `json:"user_id"`
	AirQuality  *int     `json:"air_quality"`
	PM25        *float64 `json:"pm25"`
	SO2Level    *float64 `json:"so2_level"`
	NO2Level    *float64 `json:"no2_level"`
	CO2Level    *float64 `json:"co2_level"`
	Humidity    *float64 `json:"humidity"`
	Temperature *float64 `json:"temperature"`
}

type UseInhalerRequest struct {
	UserID string `json:"user_id"`
}

type InhalerUsageResponse struct {
	UserID     string `json:"user_id"`
	UsageCount int    `json:"usage_count"`
}

type SetReminderRequest struct {
	RemindMe bool     `json:"remindMe"`
	Times    []string `json:"times"`
}

type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}

type AIResponse struct {
	RiskScore float64 `json:"risk_score"`
	Message   string  `json:"message"`
}
