package inferenceController

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/repositories"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

var (
	ErrNoSensorData    = errors.New("no sensor data found for the user")
	ErrNoQuizResponses = errors.New("no quiz responses found for the user")
)

type InferenceController struct {
	sensorRepo       repositories.SensorRepository
	quizRepo         repositories.QuizRepository
	alertRepo        repositories.AlertRepository
	inferenceService *services.InferenceService
	log              logger.Logger
}

func New(
	sensorRepo repositories.SensorRepository,
	quizRepo repositories.QuizRepository,
	alertRepo repositories.AlertRepository,
	inferenceService *services.InferenceService,
) *InferenceController {
	return &InferenceController{
		sensorRepo:       sensorRepo,
		quizRepo:         quizRepo,
		alertRepo:        alertRepo,
		inferenceService: inferenceService,
		log:              logger.New("InferenceController"),
	}
}

// RunPrediction feeds the user's latest sensor readings and stored quiz
// answers to the AI model. A score at or above the high-risk threshold
// records an alert for the user.
func (ic *InferenceController) RunPrediction(ctx context.Context, userID string) (float64, error) {
	log := ic.log.Function("RunPrediction")

	sensor, err := ic.sensorRepo.GetLatestForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoSensorData
		}
		return 0, err
	}

	responses, err := ic.quizRepo.GetOrderedForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(responses) == 0 {
		return 0, ErrNoQuizResponses
	}

	riskScore, err := ic.inferenceService.Predict(ctx, sensor, responses)
	if err != nil {
		return 0, log.Err("prediction failed", err, "userID", userID)
	}

	if riskScore >= services.HighRiskThreshold {
		alert := &Alert{
			UserID:    userID,
			Message:   fmt.Sprintf("High Risk Detected: %v", riskScore),
			Timestamp: time.Now(),
		}
		if err := ic.alertRepo.Create(ctx, alert); err != nil {
			return 0, log.Err("failed to record high-risk alert", err, "userID", userID)
		}
		log.Info("High-risk alert recorded", "userID", userID, "riskScore", riskScore)
	}

	return riskScore, nil
}

func (ic *InferenceController) GetAlerts(ctx context.Context, userID string) ([]Alert, error) {
	return ic.alertRepo.GetByUserID(ctx, userID)
}
