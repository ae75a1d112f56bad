package repositories

import (
	"context"

	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Save(ctx context.Context, schedule *ReminderSchedule) error
	GetLatest(ctx context.Context) (*ReminderSchedule, error)
}

type reminderRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReminder(db database.DB) ReminderRepository {
	return &reminderRepository{
		db:  db,
		log: logger.New("reminderRepository"),
	}
}

func (r *reminderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *reminderRepository) Save(ctx context.Context, schedule *ReminderSchedule) error {
	log := r.log.Function("Save")

	if err := r.getDB(ctx).Create(schedule).Error; err != nil {
		return log.Err("failed to save reminder schedule", err)
	}

	return nil
}

func (r *reminderRepository) GetLatest(ctx context.Context) (*ReminderSchedule, error) {
	var schedule ReminderSchedule
	if err := r.getDB(ctx).Order("created_at DESC").First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}
