package routes

import (
	"Backend-Medical-Intake/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the controllers the router mounts.
type Handlers struct {
	Forms     *controllers.FormController
	Responses *controllers.ResponseController
	Templates *controllers.TemplateController
	Settings  *controllers.SettingsController
	Status    *controllers.StatusController
}

func InitRoutes(app *fiber.App, h Handlers) {
	authRoutes(app)
	formRoutes(app, h.Forms)
	dashboardRoutes(app, h.Forms)
	responseRoutes(app, h.Responses)
	templateRoutes(app, h.Templates)
	settingsRoutes(app, h.Settings)
	statusRoutes(app, h.Status)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
