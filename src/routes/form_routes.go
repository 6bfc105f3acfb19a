package routes

import (
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes กำหนด route สำหรับ form management
func formRoutes(app *fiber.App, fc *controllers.FormController) {
	forms := app.Group("/forms", middleware.AuthJWT)

	forms.Get("/", fc.GetForms)
	forms.Post("/", fc.CreateForm)
	forms.Get("/:id", fc.GetFormByID)
	forms.Put("/:id", fc.UpdateForm)
	forms.Patch("/:id", fc.UpdateForm)
	forms.Post("/:id/publish", fc.PublishForm)
	forms.Delete("/:id", fc.DeleteForm)
}

func dashboardRoutes(app *fiber.App, fc *controllers.FormController) {
	dashboard := app.Group("/dashboard", middleware.AuthJWT)
	dashboard.Get("/summary", fc.GetDashboardSummary)
}
