package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func statusRoutes(app *fiber.App, sc *controllers.StatusController) {
	status := app.Group("/status", middleware.AuthJWT)
	status.Get("/", sc.GetStatus)
	status.Post("/dismiss-banner", sc.DismissBanner)
}
