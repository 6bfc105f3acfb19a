package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func responseRoutes(app *fiber.App, rc *controllers.ResponseController) {
	responses := app.Group("/responses", middleware.AuthJWT)
	responses.Get("/", rc.GetResponses)
	responses.Delete("/:id", rc.DeleteResponse)
}
