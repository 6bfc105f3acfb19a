package controllers

import (
	"context"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/middleware"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/settings"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	settings *settings.Service
}

func NewSettingsController(svc *settings.Service) *SettingsController {
	return &SettingsController{settings: svc}
}

func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	return c.JSON(sc.settings.Get(ctx, middleware.CurrentUser(c).ID))
}

// UpdateSettings godoc
// @Summary      Save clinic settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      models.ClinicSettings  true  "Settings"
// @Success      200       {object}  models.ClinicSettings
// @Failure      400       {object}  models.ErrorResponse
// @Router       /settings [put]
func (sc *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var in models.ClinicSettings
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := sc.settings.Save(ctx, middleware.CurrentUser(c).ID, in); err != nil {
		logger.WithError(err).Error("❌ Error saving settings")
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save settings locally")
	}
	return c.JSON(in)
}
