package handlers

import (
	"errors"

	"hridayavayu/internal/app"
	inferenceController "hridayavayu/internal/controllers/inference"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InferenceHandler struct {
	Handler
	controller *inferenceController.InferenceController
}

func NewInferenceHandler(app *app.App, router fiber.Router) *InferenceHandler {
	log := logger.New("handlers").File("inference_handler")
	return &InferenceHandler{
		controller: app.InferenceController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *InferenceHandler) Register() {
	h.router.Get("/send-data-to-ai/:user_id", h.sendDataToAI)
	h.router.Get("/get-alerts/:user_id", h.getAlerts)
}

func (h *InferenceHandler) sendDataToAI(c *fiber.Ctx) error {
	log := h.log.Function("sendDataToAI")

	userID := c.Params("user_id")
	riskScore, err := h.controller.RunPrediction(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, inferenceController.ErrNoSensorData):
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "No sensor data found for the user"})
		case errors.Is(err, inferenceController.ErrNoQuizResponses):
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "No quiz responses found for the user"})
		}
		log.Er("prediction failed", err, "userID", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to connect to AI model"})
	}

	return c.JSON(AIResponse{RiskScore: riskScore, Message: "AI risk score received"})
}

func (h *InferenceHandler) getAlerts(c *fiber.Ctx) error {
	log := h.log.Function("getAlerts")

	userID := c.Params("user_id")
	alerts, err := h.controller.GetAlerts(c.Context(), userID)
	if err != nil {
		log.Er("failed to get alerts", err, "userID", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to get alerts"})
	}

	if alerts == nil {
		alerts = []Alert{}
	}
	return c.JSON(AlertsResponse{Alerts: alerts})
}
