package handlers

import (
	"errors"

	"hridayavayu/internal/app"
	telemetryController "hridayavayu/internal/controllers/telemetry"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TelemetryHandler struct {
	Handler
	controller *telemetryController.TelemetryController
}

func NewTelemetryHandler(app *app.App, router fiber.Router) *TelemetryHandler {
	log := logger.New("handlers").File("telemetry_handler")
	return &TelemetryHandler{
		controller: app.TelemetryController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *TelemetryHandler) Register() {
	h.router.Post("/upload-sensor-data", h.uploadSensorData)
	h.router.Get("/get-user-data/:user_id", h.getUserData)
	h.router.Post("/use-inhaler", h.useInhaler)
	h.router.Get("/get-inhaler-usage/:user_id", h.getInhalerUsage)
}

func (h *TelemetryHandler) uploadSensorData(c *fiber.Ctx) error {
	log := h.log.Function("uploadSensorData")

	var request UploadSensorDataRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse sensor data", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse sensor data"})
	}

	if err := h.controller.UploadSensorData(c.Context(), &request); err != nil {
		if errors.Is(err, telemetryController.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Missing required fields"})
		}
		log.Er("failed to store sensor data", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to store sensor data"})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "Sensor data uploaded successfully"})
}

func (h *TelemetryHandler) getUserData(c *fiber.Ctx) error {
	log := h.log.Function("getUserData")

	userID := c.Params("user_id")
	data, err := h.controller.GetUserData(c.Context(), userID)
	if err != nil {
		log.Er("failed to get sensor data", err, "userID", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to get sensor data"})
	}

	if data == nil {
		data = []SensorData{}
	}
	return c.JSON(fiber.Map{"user_data": data})
}

func (h *TelemetryHandler) useInhaler(c *fiber.Ctx) error {
	log := h.log.Function("useInhaler")

	var request UseInhalerRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse inhaler request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse inhaler request"})
	}
	if request.UserID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "User ID is required"})
	}

	usage, err := h.controller.UseInhaler(c.Context(), request.UserID)
	if err != nil {
		log.Er("failed to record inhaler use", err, "userID", request.UserID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to record inhaler use"})
	}

	return c.JSON(fiber.Map{"message": "Inhaler usage recorded", "usage_count": usage.UsageCount})
}

func (h *TelemetryHandler) getInhalerUsage(c *fiber.Ctx) error {
	log := h.log.Function("getInhalerUsage")

	userID := c.Params("user_id")
	usage, err := h.controller.GetInhalerUsage(c.Context(), userID)
	if err != nil {
		if errors.Is(err, telemetryController.ErrNoUsageData) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "No inhaler usage data found for the user"})
		}
		log.Er("failed to get inhaler usage", err, "userID", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to get inhaler usage"})
	}

	return c.JSON(InhalerUsageResponse{UserID: userID, UsageCount: usage.UsageCount})
}
