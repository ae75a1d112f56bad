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

const QUIZ_CACHE_EXPIRY = 12 * time.Hour

type QuizRepository interface {
	// ReplaceForUser stores a fresh answer set for the user, dropping any
	// previous submission. Answers for questions outside StoredQuestions
	// are ignored.
	ReplaceForUser(ctx context.Context, userID string, answers map[string]string) error
	// GetOrderedForUser returns the user's stored answers in
	// StoredQuestions order.
	GetOrderedForUser(ctx context.Context, userID string) ([]QuizResponse, error)
}

type quizRepository struct {
	db  database.DB
	log logger.Logger
}

func NewQuiz(db database.DB) QuizRepository {
	return &quizRepository{
		db:  db,
		log: logger.New("quizRepository"),
	}
}

func (r *quizRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// buildResponses keeps answers for stored questions only, in stored
// question order.
func buildResponses(userID string, answers map[string]string) []QuizResponse {
	var responses []QuizResponse
	for _, question := range StoredQuestions {
		if answer, ok := answers[question]; ok {
			responses = append(responses, QuizResponse{
				UserID:   userID,
				Question: question,
				Answer:   answer,
			})
		}
	}
	return responses
}

func (r *quizRepository) ReplaceForUser(ctx context.Context, userID string, answers map[string]string) error {
	log := r.log.Function("ReplaceForUser")

	responses := buildResponses(userID, answers)

	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&QuizResponse{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
	if err != nil {
		return log.Err("failed to replace quiz responses", err, "userID", userID)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Quiz, userID).Delete(); err != nil {
		log.Warn("failed to invalidate quiz cache", "userID", userID, "error", err)
	}

	return nil
}

func (r *quizRepository) GetOrderedForUser(ctx context.Context, userID string) ([]QuizResponse, error) {
	log := r.log.Function("GetOrderedForUser")

	var responses []QuizResponse
	if err := database.NewCacheBuilder(r.db.Cache.Quiz, userID).Get(ctx, &responses); err == nil {
		return responses, nil
	}

	if err := r.getDB(ctx).Where("user_id = ?", userID).Find(&responses).Error; err != nil {
		return nil, log.Err("failed to get quiz responses", err, "userID", userID)
	}

	ordered := make([]QuizResponse, 0, len(responses))
	for _, question := range StoredQuestions {
		for _, response := range responses {
			if response.Question == question {
				ordered = append(ordered, response)
				break
			}
		}
	}

	if err := database.NewCacheBuilder(r.db.Cache.Quiz, userID).
		WithExpiry(QUIZ_CACHE_EXPIRY).
		Set(ctx, ordered); err != nil {
		log.Warn("failed to cache quiz responses", "userID", userID, "error", err)
	}

	return ordered, nil
}
