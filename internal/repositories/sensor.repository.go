package repositories

import (
	"context"

	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

type SensorRepository interface {
	Create(ctx context.Context, data *SensorData) error
	GetLatestForUser(ctx context.Context, userID string) (*SensorData, error)
	GetAllForUser(ctx context.Context, userID string) ([]SensorData, error)
}

type sensorRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSensor(db database.DB) SensorRepository {
	return &sensorRepository{
		db:  db,
		log: logger.New("sensorRepository"),
	}
}

func (r *sensorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *sensorRepository) Create(ctx context.Context, data *SensorData) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(data).Error; err != nil {
		return log.Err("failed to create sensor data", err, "userID", data.UserID)
	}

	return nil
}

func (r *sensorRepository) GetLatestForUser(ctx context.Context, userID string) (*SensorData, error) {
	log := r.log.Function("GetLatestForUser")

	var data SensorData
	err := r.getDB(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&data).Error
	if err != nil {
		return nil, log.Err("failed to get latest sensor data", err, "userID", userID)
	}

	return &data, nil
}

func (r *sensorRepository) GetAllForUser(ctx context.Context, userID string) ([]SensorData, error) {
	log := r.log.Function("GetAllForUser")

	var data []SensorData
	if err := r.getDB(ctx).Where("user_id = ?", userID).Order("timestamp ASC").Find(&data).Error; err != nil {
		return nil, log.Err("failed to get sensor data", err, "userID", userID)
	}

	return data, nil
}
