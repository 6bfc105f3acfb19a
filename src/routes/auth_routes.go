package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth", middleware.AuthJWT)
	auth.Get("/me", controllers.GetMe)
}
