package handlers

import (
	"hridayavayu/internal/app"
	"hridayavayu/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

// Router wires every API route. Paths are registered at the root so the
// wire surface matches what the mobile client calls.
func Router(router fiber.Router, app *app.App) error {
	HealthHandler(router)
	NewProfileHandler(app, router).Register()
	NewQuizHandler(app, router).Register()
	NewInferenceHandler(app, router).Register()
	NewTelemetryHandler(app, router).Register()
	NewReminderHandler(app, router).Register()

	return nil
}

func HealthHandler(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Smart Inhaler API!"})
	})
	router.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
