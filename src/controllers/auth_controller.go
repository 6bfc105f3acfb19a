package controllers

import (
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetMe godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.CurrentUser
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
