package middleware

import (
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)

	return c.Next()
}

// CurrentUser returns the identity AuthJWT stored on the request.
func CurrentUser(c *fiber.Ctx) models.CurrentUser {
	id, _ := c.Locals("userId").(string)
	email, _ := c.Locals("email").(string)
	return models.CurrentUser{ID: id, Email: email}
}
