package handlers

import (
	"errors"

	"hridayavayu/internal/app"
	quizController "hridayavayu/internal/controllers/quiz"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	Handler
	controller *quizController.QuizController
}

func NewQuizHandler(app *app.App, router fiber.Router) *QuizHandler {
	log := logger.New("handlers").File("quiz_handler")
	return &QuizHandler{
		controller: app.QuizController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *QuizHandler) Register() {
	h.router.Post("/submit-quiz", h.submitQuiz)
	h.router.Get("/get-quiz-responses/:user_id", h.getQuizResponses)
}

func (h *QuizHandler) submitQuiz(c *fiber.Ctx) error {
	log := h.log.Function("submitQuiz")

	var request SubmitQuizRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse quiz submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse quiz submission"})
	}

	if err := h.controller.SubmitQuiz(c.Context(), &request); err != nil {
		if errors.Is(err, quizController.ErrInvalidSubmission) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid request. Provide user_id and at least one answer"})
		}
		log.Er("failed to store quiz submission", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to store quiz submission"})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "Quiz responses saved successfully"})
}

func (h *QuizHandler) getQuizResponses(c *fiber.Ctx) error {
	log := h.log.Function("getQuizResponses")

	userID := c.Params("user_id")
	answers, err := h.controller.GetResponses(c.Context(), userID)
	if err != nil {
		log.Er("failed to get quiz responses", err, "userID", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to get quiz responses"})
	}

	return c.JSON(QuizResponsesResponse{QuizResponses: answers})
}
