package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func settingsRoutes(app *fiber.App, sc *controllers.SettingsController) {
	settings := app.Group("/settings", middleware.AuthJWT)
	settings.Get("/", sc.GetSettings)
	settings.Put("/", sc.UpdateSettings)
}
