package repositories

import (
	"context"
	"time"

	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

const ALERT_CACHE_EXPIRY = 15 * time.Minute

type AlertRepository interface {
	Create(ctx context.Context, alert *Alert) error
	GetByUserID(ctx context.Context, userID string) ([]Alert, error)
}

type alertRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAlert(db database.DB) AlertRepository {
	return &alertRepository{
		db:  db,
		log: logger.New("alertRepository"),
	}
}

func (r *alertRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *alertRepository) Create(ctx context.Context, alert *Alert) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(alert).Error; err != nil {
		return log.Err("failed to create alert", err, "userID", alert.UserID)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Alert, alert.UserID).Delete(); err != nil {
		log.Warn("failed to invalidate alert cache", "userID", alert.UserID, "error", err)
	}

	return nil
}

func (r *alertRepository) GetByUserID(ctx context.Context, userID string) ([]Alert, error) {
	log := r.log.Function("GetByUserID")

	var alerts []Alert
	if err := database.NewCacheBuilder(r.db.Cache.Alert, userID).Get(ctx, &alerts); err == nil {
		return alerts, nil
	}

	if err := r.getDB(ctx).Where("user_id = ?", userID).Order("timestamp DESC").Find(&alerts).Error; err != nil {
		return nil, log.Err("failed to get alerts", err, "userID", userID)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Alert, userID).
		WithExpiry(ALERT_CACHE_EXPIRY).
		Set(ctx, alerts); err != nil {
		log.Warn("failed to cache alerts", "userID", userID, "error", err)
	}

	return alerts, nil
}
