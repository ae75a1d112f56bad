package handlers

import (
	"hridayavayu/internal/app"
	reminderController "hridayavayu/internal/controllers/reminder"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReminderHandler struct {
	Handler
	controller *reminderController.ReminderController
}

func NewReminderHandler(app *app.App, router fiber.Router) *ReminderHandler {
	log := logger.New("handlers").File("reminder_handler")
	return &ReminderHandler{
		controller: app.ReminderController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *ReminderHandler) Register() {
	h.router.Post("/set-reminder", h.setReminder)
}

func (h *ReminderHandler) setReminder(c *fiber.Ctx) error {
	log := h.log.Function("setReminder")

	var request SetReminderRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse reminder request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse reminder request"})
	}

	if err := h.controller.SetReminder(c.Context(), &request); err != nil {
		log.Er("failed to set reminder", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to set reminder"})
	}

	return c.JSON(fiber.Map{"message": "Reminder set successfully"})
}
