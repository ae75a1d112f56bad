package telemetryController

import (
	"context"
	"errors"
	"time"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/repositories"

	"gorm.io/gorm"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNoUsageData   = errors.New("no inhaler usage data found for the user")
)

// TelemetryController handles device-originated data: environmental
// sensor readings and inhaler usage counts.
type TelemetryController struct {
	sensorRepo  repositories.SensorRepository
	inhalerRepo repositories.InhalerRepository
	log         logger.Logger
}

func New(
	sensorRepo repositories.SensorRepository,
	inhalerRepo repositories.InhalerRepository,
) *TelemetryController {
	return &TelemetryController{
		sensorRepo:  sensorRepo,
		inhalerRepo: inhalerRepo,
		log:         logger.New("TelemetryController"),
	}
}

func (tc *TelemetryController) UploadSensorData(ctx context.Context, request *UploadSensorDataRequest) error {
	log := tc.log.Function("UploadSensorData")

	if request.UserID == "" ||
		request.AirQuality == nil ||
		request.PM25 == nil ||
		request.SO2Level == nil ||
		request.NO2Level == nil ||
		request.CO2Level == nil ||
		request.Humidity == nil ||
		request.Temperature == nil {
		return ErrMissingFields
	}

	data := &SensorData{
		UserID:      request.UserID,
		Timestamp:   time.Now(),
		AirQuality:  *request.AirQuality,
		PM25:        *request.PM25,
		SO2Level:    *request.SO2Level,
		NO2Level:    *request.NO2Level,
		CO2Level:    *request.CO2Level,
		Humidity:    *request.Humidity,
		Temperature: *request.Temperature,
	}

	if err := tc.sensorRepo.Create(ctx, data); err != nil {
		return log.Err("failed to store sensor data", err, "userID", request.UserID)
	}

	return nil
}

func (tc *TelemetryController) GetUserData(ctx context.Context, userID string) ([]SensorData, error) {
	return tc.sensorRepo.GetAllForUser(ctx, userID)
}

func (tc *TelemetryController) UseInhaler(ctx context.Context, userID string) (*InhalerUsage, error) {
	log := tc.log.Function("UseInhaler")

	usage, err := tc.inhalerRepo.IncrementUsage(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to record inhaler use", err, "userID", userID)
	}

	return usage, nil
}

func (tc *TelemetryController) GetInhalerUsage(ctx context.Context, userID string) (*InhalerUsage, error) {
	usage, err := tc.inhalerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUsageData
		}
		return nil, err
	}
	return usage, nil
}
