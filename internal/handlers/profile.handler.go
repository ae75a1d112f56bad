package handlers

import (
	"errors"

	"hridayavayu/internal/app"
	profileController "hridayavayu/internal/controllers/profile"
	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Handler
	controller *profileController.ProfileController
}

func NewProfileHandler(app *app.App, router fiber.Router) *ProfileHandler {
	log := logger.New("handlers").File("profile_handler")
	return &ProfileHandler{
		controller: app.ProfileController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *ProfileHandler) Register() {
	h.router.Post("/save-profile", h.saveProfile)
	h.router.Get("/get-user/:id", h.getUser)
}

func (h *ProfileHandler) saveProfile(c *fiber.Ctx) error {
	log := h.log.Function("saveProfile")

	var request SaveProfileRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse profile request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse profile request"})
	}

	user, err := h.controller.SaveProfile(c.Context(), &request)
	if err != nil {
		log.Er("failed to save profile", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to save profile"})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "Profile saved successfully", "user_id": user.ID})
}

func (h *ProfileHandler) getUser(c *fiber.Ctx) error {
	log := h.log.Function("getUser")

	id := c.Params("id")
	user, err := h.controller.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, profileController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "User not found"})
		}
		log.Er("failed to get user", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to get user"})
	}

	return c.JSON(user)
}
