package repositories

import (
	"context"
	"errors"

	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

type InhalerRepository interface {
	// IncrementUsage bumps the user's usage counter, creating the row on
	// first use, and returns the updated record.
	IncrementUsage(ctx context.Context, userID string) (*InhalerUsage, error)
	GetByUserID(ctx context.Context, userID string) (*InhalerUsage, error)
}

type inhalerRepository struct {
	db  database.DB
	log logger.Logger
}

func NewInhaler(db database.DB) InhalerRepository {
	return &inhalerRepository{
		db:  db,
		log: logger.New("inhalerRepository"),
	}
}

func (r *inhalerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *inhalerRepository) IncrementUsage(ctx context.Context, userID string) (*InhalerUsage, error) {
	log := r.log.Function("IncrementUsage")

	var usage InhalerUsage
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&usage).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			usage = InhalerUsage{UserID: userID, UsageCount: 1}
			return tx.Create(&usage).Error
		case err != nil:
			return err
		}

		usage.UsageCount++
		return tx.Save(&usage).Error
	})
	if err != nil {
		return nil, log.Err("failed to increment inhaler usage", err, "userID", userID)
	}

	return &usage, nil
}

func (r *inhalerRepository) GetByUserID(ctx context.Context, userID string) (*InhalerUsage, error) {
	var usage InhalerUsage
	if err := r.getDB(ctx).Where("user_id = ?", userID).First(&usage).Error; err != nil {
		return nil, err
	}
	return &usage, nil
}
