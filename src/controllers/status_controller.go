package controllers

import (
	"context"

	"Backend-Medical-Intake/src/middleware"
	"Backend-Medical-Intake/src/services/status"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
)

type StatusController struct {
	status *status.Service
}

func NewStatusController(svc *status.Service) *StatusController {
	return &StatusController{status: svc}
}

// GetStatus godoc
// @Summary      Storage mode
// @Description  Whether the database is reachable or forms are kept in local storage.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.DatabaseStatus
// @Router       /status [get]
func (sc *StatusController) GetStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	return c.JSON(sc.status.Status(ctx, middleware.CurrentUser(c).ID))
}

func (sc *StatusController) DismissBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := sc.status.DismissBanner(ctx, middleware.CurrentUser(c).ID); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save preference locally")
	}
	return c.JSON(fiber.Map{"message": "Banner dismissed"})
}
