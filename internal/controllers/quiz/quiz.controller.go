package quizController

import (
	"context"
	"errors"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/repositories"
)

var ErrInvalidSubmission = errors.New("user_id and at least one answer are required")

type QuizController struct {
	quizRepo repositories.QuizRepository
	log      logger.Logger
}

func New(quizRepo repositories.QuizRepository) *QuizController {
	return &QuizController{
		quizRepo: quizRepo,
		log:      logger.New("QuizController"),
	}
}

// SubmitQuiz stores the answer set, replacing any earlier submission for
// the same user.
func (qc *QuizController) SubmitQuiz(ctx context.Context, request *SubmitQuizRequest) error {
	log := qc.log.Function("SubmitQuiz")

	if request.UserID == "" || len(request.Answers) == 0 {
		return ErrInvalidSubmission
	}

	if err := qc.quizRepo.ReplaceForUser(ctx, request.UserID, request.Answers); err != nil {
		return log.Err("failed to store quiz submission", err, "userID", request.UserID)
	}

	return nil
}

func (qc *QuizController) GetResponses(ctx context.Context, userID string) ([]QuizAnswer, error) {
	responses, err := qc.quizRepo.GetOrderedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	answers := make([]QuizAnswer, 0, len(responses))
	for _, response := range responses {
		answers = append(answers, QuizAnswer{
			Question: response.Question,
			Answer:   response.Answer,
		})
	}
	return answers, nil
}
