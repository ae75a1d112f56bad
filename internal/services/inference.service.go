package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
)

// HighRiskThreshold is the asthma risk score at or above which an alert
// is recorded for the user.
const HighRiskThreshold = 0.6

// quizFeatureNames maps the stored question order onto the feature names
// the AI model expects.
var quizFeatureNames = []string{
	"Asthma Symptoms Frequency",
	"Triggers",
	"Weather Sensitivity",
	"Poor Air Quality Exposure",
	"Night Breathing Difficulty",
}

// InferenceService sends a user's latest sensor readings and quiz answers
// to the external AI model and returns the risk score it produces.
type InferenceService struct {
	modelURL string
	client   *http.Client
	log      logger.Logger
}

func NewInferenceService(modelURL string) *InferenceService {
	return &InferenceService{
		modelURL: modelURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      logger.New("InferenceService"),
	}
}

// BuildPayload merges sensor readings and quiz answers into the flat
// feature map the model was trained on. Quiz responses must be in stored
// question order.
func BuildPayload(sensor *SensorData, responses []QuizResponse) (map[string]any, error) {
	if len(responses) < len(quizFeatureNames) {
		return nil, fmt.Errorf("expected %d quiz responses, got %d", len(quizFeatureNames), len(responses))
	}

	payload := map[string]any{
		"AQI":         sensor.AirQuality,
		"PM2.5":       sensor.PM25,
		"SO2 level":   sensor.SO2Level,
		"NO2 level":   sensor.NO2Level,
		"CO2 level":   sensor.CO2Level,
		"Humidity":    sensor.Humidity,
		"Temperature": sensor.Temperature,
	}
	for i, name := range quizFeatureNames {
		payload[name] = responses[i].Answer
	}
	return payload, nil
}

// Predict posts the combined payload to the model and returns the
// asthma risk score. A missing score field reads as 0.
func (s *InferenceService) Predict(ctx context.Context, sensor *SensorData, responses []QuizResponse) (float64, error) {
	log := s.log.Function("Predict")

	payload, err := BuildPayload(sensor, responses)
	if err != nil {
		return 0, log.Err("failed to build model payload", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, log.Err("failed to marshal model payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL, bytes.NewReader(body))
	if err != nil {
		return 0, log.Err("failed to build model request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, log.Err("failed to reach AI model", err, "url", s.modelURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, log.Error("AI model returned non-success status", "status", resp.StatusCode)
	}

	var result struct {
		AsthmaRiskScore float64 `json:"asthma_risk_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, log.Err("failed to decode model response", err)
	}

	return result.AsthmaRiskScore, nil
}
