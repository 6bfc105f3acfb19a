package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func templateRoutes(app *fiber.App, tc *controllers.TemplateController) {
	templates := app.Group("/templates", middleware.AuthJWT)
	templates.Get("/", tc.GetTemplates)
	templates.Get("/categories", tc.GetCategories)
	templates.Post("/:id/use", tc.UseTemplate)
}
